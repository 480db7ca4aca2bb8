// Package models defines the typed records exchanged with the club API.
// Response payloads are decoded into these at the transport boundary so the
// rest of the client never works with untyped maps.
package models

import "time"

// Roles assigned by the server.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Membership states used in the members directory.
const (
	MembershipActive  = "active"
	MembershipPassive = "passive"
)

// User is the authenticated identity and the member-directory record.
type User struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Role             string     `json:"role"`
	MembershipStatus string     `json:"membership_status,omitempty"`
	CarBrand         string     `json:"car_brand,omitempty"`
	CarModel         string     `json:"car_model,omitempty"`
	CarYear          int        `json:"car_year,omitempty"`
	LicensePlate     string     `json:"license_plate,omitempty"`
	MembershipDate   *time.Time `json:"membership_date,omitempty"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate carries the caller-editable profile fields.
type ProfileUpdate struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CarBrand     string `json:"car_brand,omitempty"`
	CarModel     string `json:"car_model,omitempty"`
	CarYear      int    `json:"car_year,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
}

// LoginRequest is the credentials payload for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success payload of POST /api/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PasswordChange is the payload for the password-change endpoints.
type PasswordChange struct {
	Current      string `json:"current_password"`
	New          string `json:"new_password"`
	Confirmation string `json:"new_password_confirmation"`
}
