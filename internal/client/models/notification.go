package models

import "time"

// Notification kinds understood by the presentation layer.
const (
	NotificationEvent        = "event"
	NotificationApplication  = "application"
	NotificationSystem       = "system"
	NotificationAnnouncement = "announcement"
	NotificationMessage      = "message"
)

// Notification is a server-owned message mirrored into the local cache.
// The only client-visible transition is unread -> read.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"notification_type"`
	IsRead    bool      `json:"is_read"`
	RelatedID string    `json:"related_id,omitempty"`
	ActionURL string    `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationInput is the payload for creating one notification.
type NotificationInput struct {
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Kind      string `json:"notification_type"`
	RelatedID string `json:"related_id,omitempty"`
	ActionURL string `json:"action_url,omitempty"`
}
