package models

import "time"

// Content families served by the content endpoints.
const (
	ContentNews    = "news"
	ContentSponsor = "sponsor"
)

// Content is a published news item or sponsor entry.
type Content struct {
	ID           string     `json:"id"`
	Type         string     `json:"content_type"`
	Title        string     `json:"title"`
	Body         string     `json:"body,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	LinkURL      string     `json:"link_url,omitempty"`
	IsPublished  bool       `json:"is_published"`
	IsMemberOnly bool       `json:"is_member_only"`
	ViewCount    int        `json:"view_count"`
	AuthorID     string     `json:"author_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ContentInput is the create/update payload for admin content management.
type ContentInput struct {
	Type         string `json:"content_type"`
	Title        string `json:"title"`
	Body         string `json:"body,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	IsPublished  bool   `json:"is_published"`
	IsMemberOnly bool   `json:"is_member_only"`
}

// Setting is a single site configuration entry.
type Setting struct {
	Key         string     `json:"setting_key"`
	Value       string     `json:"setting_value"`
	Description string     `json:"description,omitempty"`
	IsPublic    bool       `json:"is_public"`
	UpdatedBy   string     `json:"updated_by,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Statistics is the admin dashboard counter set.
type Statistics struct {
	TotalMembers        int `json:"total_members"`
	TotalApplications   int `json:"total_applications"`
	TotalEvents         int `json:"total_events"`
	PendingApplications int `json:"pending_applications"`
	ActiveEvents        int `json:"active_events"`
}
