package models

import "time"

// Media families derived from the MIME type at upload.
const (
	MediaImage    = "image"
	MediaVideo    = "video"
	MediaDocument = "document"
	MediaOther    = "other"
)

// Media is the metadata record for an object stored in the media bucket.
type Media struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	StorageKey       string    `json:"storage_key"`
	FileURL          string    `json:"file_url"`
	FileSize         int64     `json:"file_size"`
	MimeType         string    `json:"mime_type"`
	MediaType        string    `json:"media_type"`
	AltText          string    `json:"alt_text,omitempty"`
	Caption          string    `json:"caption,omitempty"`
	IsPublic         bool      `json:"is_public"`
	UploadedBy       string    `json:"uploaded_by,omitempty"`
	RelatedEventID   string    `json:"related_event_id,omitempty"`
	RelatedContentID string    `json:"related_content_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// MediaInsert is the metadata payload persisted after a successful storage
// write.
type MediaInsert struct {
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	StorageKey       string `json:"storage_key"`
	FileURL          string `json:"file_url"`
	FileSize         int64  `json:"file_size"`
	MimeType         string `json:"mime_type"`
	MediaType        string `json:"media_type"`
	AltText          string `json:"alt_text,omitempty"`
	Caption          string `json:"caption,omitempty"`
	IsPublic         bool   `json:"is_public"`
	RelatedEventID   string `json:"related_event_id,omitempty"`
	RelatedContentID string `json:"related_content_id,omitempty"`
}

// MediaUpdate patches the caller-editable metadata of a media record. Nil
// fields are left untouched; the stored object itself is immutable.
type MediaUpdate struct {
	AltText  *string `json:"alt_text,omitempty"`
	Caption  *string `json:"caption,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

// MediaFilter narrows media listings.
type MediaFilter struct {
	MediaType  string
	EventID    string
	ContentID  string
	UploadedBy string
}

// EventMediaLink ties a media record to an event for galleries.
type EventMediaLink struct {
	EventID      string `json:"event_id"`
	MediaID      string `json:"media_id"`
	IsCoverImage bool   `json:"is_cover_image"`
	DisplayOrder int    `json:"display_order"`
}

// StorageUsage summarizes bucket consumption.
type StorageUsage struct {
	TotalSize int64 `json:"total_size"`
	FileCount int   `json:"file_count"`
}
