package announcement

import (
	"context"
	"time"

	"github.com/gajikita/payroll-backend-go/internal/domain/announcement"
	"github.com/gajikita/payroll-backend-go/internal/pkg/validator"
)

type AnnouncementService struct {
	announcementRepo announcement.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

func (s *AnnouncementService) Create(ctx context.Context, companyID, createdBy string, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	publishAt := time.Now()
	if req.PublishAt != nil {
		t, err := time.Parse(time.RFC3339, *req.PublishAt)
		if err != nil {
			return announcement.AnnouncementResponse{}, validator.ValidationErrors{{Field: "publish_at", Message: "must be an RFC3339 timestamp"}}
		}
		publishAt = t
	}

	var expireAt *time.Time
	if req.ExpireAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ExpireAt)
		if err != nil {
			return announcement.AnnouncementResponse{}, validator.ValidationErrors{{Field: "expire_at", Message: "must be an RFC3339 timestamp"}}
		}
		if t.Before(publishAt) {
			return announcement.AnnouncementResponse{}, validator.ValidationErrors{{Field: "expire_at", Message: "must not be before publish_at"}}
		}
		expireAt = &t
	}

	created, err := s.announcementRepo.Create(ctx, announcement.Announcement{
		CompanyID: companyID,
		Title:     req.Title,
		Body:      req.Body,
		PublishAt: publishAt,
		ExpireAt:  expireAt,
		CreatedBy: createdBy,
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	return toResponse(created), nil
}

func (s *AnnouncementService) GetByID(ctx context.Context, id, companyID string) (announcement.AnnouncementResponse, error) {
	a, err := s.announcementRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}
	return toResponse(a), nil
}

// ListVisible returns announcements currently within their publish window.
func (s *AnnouncementService) ListVisible(ctx context.Context, companyID string) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.ListVisible(ctx, companyID, time.Now())
	if err != nil {
		return nil, err
	}
	return toResponses(announcements), nil
}

// ListAll returns every announcement regardless of visibility, for admins.
func (s *AnnouncementService) ListAll(ctx context.Context, companyID string) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toResponses(announcements), nil
}

func (s *AnnouncementService) Update(ctx context.Context, companyID string, req announcement.UpdateAnnouncementRequest) error {
	if req.ExpireAt != nil {
		if _, err := time.Parse(time.RFC3339, *req.ExpireAt); err != nil {
			return validator.ValidationErrors{{Field: "expire_at", Message: "must be an RFC3339 timestamp"}}
		}
	}
	return s.announcementRepo.Update(ctx, companyID, req)
}

func (s *AnnouncementService) Delete(ctx context.Context, id, companyID string) error {
	return s.announcementRepo.Delete(ctx, id, companyID)
}

func toResponses(announcements []announcement.Announcement) []announcement.AnnouncementResponse {
	out := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, toResponse(a))
	}
	return out
}

func toResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	resp := announcement.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		PublishAt: a.PublishAt.Format(time.RFC3339),
		CreatedBy: a.CreatedBy,
	}
	if a.ExpireAt != nil {
		expireAt := a.ExpireAt.Format(time.RFC3339)
		resp.ExpireAt = &expireAt
	}
	return resp
}
