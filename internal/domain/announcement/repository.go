package announcement

import (
	"context"
	"time"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string, companyID string) (Announcement, error)
	// ListVisible returns announcements whose publish window contains t.
	ListVisible(ctx context.Context, companyID string, t time.Time) ([]Announcement, error)
	List(ctx context.Context, companyID string) ([]Announcement, error)
	Update(ctx context.Context, companyID string, req UpdateAnnouncementRequest) error
	Delete(ctx context.Context, id string, companyID string) error
}
