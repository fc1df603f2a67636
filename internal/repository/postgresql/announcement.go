package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/announcement"
	"github.com/gajikita/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

const announcementColumns = `id, company_id, title, body, publish_at, expire_at, created_by, created_at, updated_at`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.Title, &a.Body, &a.PublishAt, &a.ExpireAt,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (company_id, title, body, publish_at, expire_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + announcementColumns

	created, err := scanAnnouncement(q.QueryRow(ctx, query,
		a.CompanyID, a.Title, a.Body, a.PublishAt, a.ExpireAt, a.CreatedBy,
	))
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return created, nil
}

func (r *announcementRepository) GetByID(ctx context.Context, id string, companyID string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1 AND company_id = $2`

	a, err := scanAnnouncement(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	return a, nil
}

func (r *announcementRepository) ListVisible(ctx context.Context, companyID string, t time.Time) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + announcementColumns + `
		FROM announcements
		WHERE company_id = $1 AND publish_at <= $2 AND (expire_at IS NULL OR expire_at >= $2)
		ORDER BY publish_at DESC
	`

	return r.queryList(ctx, q, query, companyID, t)
}

func (r *announcementRepository) List(ctx context.Context, companyID string) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE company_id = $1 ORDER BY publish_at DESC`

	return r.queryList(ctx, q, query, companyID)
}

func (r *announcementRepository) queryList(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]announcement.Announcement, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

func (r *announcementRepository) Update(ctx context.Context, companyID string, req announcement.UpdateAnnouncementRequest) error {
	q := GetQuerier(ctx, r.db)

	var expireAt *time.Time
	if req.ExpireAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ExpireAt)
		if err != nil {
			return fmt.Errorf("invalid expire_at: %w", err)
		}
		expireAt = &t
	}

	query := `
		UPDATE announcements SET
			title = COALESCE($3, title),
			body = COALESCE($4, body),
			expire_at = COALESCE($5, expire_at),
			updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, req.ID, companyID, req.Title, req.Body, expireAt)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
