package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnnouncement_IsVisible(t *testing.T) {
	publish := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	expire := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("before publish", func(t *testing.T) {
		a := Announcement{PublishAt: publish, ExpireAt: &expire}
		assert.False(t, a.IsVisible(publish.Add(-time.Minute)))
	})

	t.Run("inside window", func(t *testing.T) {
		a := Announcement{PublishAt: publish, ExpireAt: &expire}
		assert.True(t, a.IsVisible(publish))
		assert.True(t, a.IsVisible(publish.AddDate(0, 0, 5)))
		assert.True(t, a.IsVisible(expire))
	})

	t.Run("after expire", func(t *testing.T) {
		a := Announcement{PublishAt: publish, ExpireAt: &expire}
		assert.False(t, a.IsVisible(expire.Add(time.Second)))
	})

	t.Run("nil expire never expires", func(t *testing.T) {
		a := Announcement{PublishAt: publish}
		assert.True(t, a.IsVisible(publish.AddDate(10, 0, 0)))
	})
}
