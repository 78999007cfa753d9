package announcements

import "time"

// Announcement is a broadcast message shown to all users.
type Announcement struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Priority  string     `json:"priority"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedBy int64      `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// AnnouncementInput is the create/edit form payload.
type AnnouncementInput struct {
	Title     string     `json:"title" validate:"required,max=200"`
	Body      string     `json:"body" validate:"required"`
	Priority  string     `json:"priority" validate:"omitempty,oneof=low normal high"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
