package models

import "time"

// Application lifecycle. Transitions are one-way: pending may become
// approved or rejected, and both of those are terminal.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application is a membership application awaiting an admin decision.
type Application struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	CarBrand        string     `json:"car_brand,omitempty"`
	CarModel        string     `json:"car_model,omitempty"`
	CarYear         int        `json:"car_year,omitempty"`
	Motivation      string     `json:"motivation,omitempty"`
	Status          string     `json:"status"`
	AdminNotes      string     `json:"admin_notes,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// Decided reports whether the application reached a terminal state.
func (a Application) Decided() bool {
	return a.Status == ApplicationApproved || a.Status == ApplicationRejected
}

// NewApplication is the public submission payload.
type NewApplication struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	CarBrand   string `json:"car_brand,omitempty"`
	CarModel   string `json:"car_model,omitempty"`
	CarYear    int    `json:"car_year,omitempty"`
	Motivation string `json:"motivation,omitempty"`
}

// ApplicationDecision is the admin decision payload.
type ApplicationDecision struct {
	Decision        string `json:"decision"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}
