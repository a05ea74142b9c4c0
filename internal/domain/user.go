package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role determines what a user may do
type Role string

const (
	// RoleAdmin manages the whole platform
	RoleAdmin Role = "ADMIN"
	// RoleOrganizer creates events and validates tickets
	RoleOrganizer Role = "ORGANIZER"
	// RoleVisitor subscribes to events
	RoleVisitor Role = "VISITOR"
)

// IsValid checks if the role is a known value
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleVisitor:
		return true
	}
	return false
}

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// User is a registered account
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a user account
func NewUser(email, passwordHash, firstName, lastName string, role Role) *User {
	now := time.Now()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// FullName returns the display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
