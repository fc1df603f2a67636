package announcement

import "github.com/gajikita/payroll-backend-go/internal/pkg/validator"

type CreateAnnouncementRequest struct {
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	PublishAt *string `json:"publish_at,omitempty"` // RFC3339, defaults to now
	ExpireAt  *string `json:"expire_at,omitempty"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAnnouncementRequest struct {
	ID       string
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	ExpireAt *string `json:"expire_at,omitempty"`
}

type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	PublishAt string  `json:"publish_at"`
	ExpireAt  *string `json:"expire_at,omitempty"`
	CreatedBy string  `json:"created_by"`
}
