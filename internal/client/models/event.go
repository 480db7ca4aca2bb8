package models

import "time"

// Event publication states.
const (
	EventDraft     = "draft"
	EventPublished = "published"
	EventCancelled = "cancelled"
)

// Participation states for a member on an event.
const (
	ParticipationInterested = "interested"
	ParticipationConfirmed  = "confirmed"
	ParticipationDeclined   = "declined"
)

// Event is a club meetup, drive, or track day.
type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Location        string     `json:"location,omitempty"`
	EventDate       time.Time  `json:"event_date"`
	Status          string     `json:"status"`
	OrganizerID     string     `json:"organizer_id,omitempty"`
	MaxParticipants int        `json:"max_participants,omitempty"`
	CoverImageURL   string     `json:"cover_image_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// EventInput is the create/update payload for admin event management.
type EventInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	EventDate       time.Time `json:"event_date"`
	Status          string    `json:"status,omitempty"`
	MaxParticipants int       `json:"max_participants,omitempty"`
}

// EventParticipant is a member's registration on an event.
type EventParticipant struct {
	EventID             string    `json:"event_id"`
	UserID              string    `json:"user_id"`
	ParticipationStatus string    `json:"participation_status"`
	RegistrationNotes   string    `json:"registration_notes,omitempty"`
	RegistrationDate    time.Time `json:"registration_date"`
	User                *User     `json:"user,omitempty"`
}
