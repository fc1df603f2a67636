package announcement

import "time"

type Announcement struct {
	ID        string
	CompanyID string
	Title     string
	Body      string
	// PublishAt/ExpireAt bound the visibility window; a nil ExpireAt means
	// the announcement never expires.
	PublishAt time.Time
	ExpireAt  *time.Time
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsVisible reports whether the announcement should be shown at t.
func (a Announcement) IsVisible(t time.Time) bool {
	if t.Before(a.PublishAt) {
		return false
	}
	if a.ExpireAt != nil && t.After(*a.ExpireAt) {
		return false
	}
	return true
}
