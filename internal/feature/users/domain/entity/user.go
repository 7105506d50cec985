// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a managed user record.
// The JSON shape is the service's wire representation; note that the password
// is stored and returned as a plain field, a known limitation of this system.
type User struct {
	// ID is the unique identifier for the user, assigned once at creation.
	ID string `json:"id" gorm:"primaryKey;size:36"`

	// Username identifies the user publicly.
	// It must be unique across all users and is immutable after creation.
	Username string `json:"username" gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address. Immutable after creation.
	Email string `json:"email" gorm:"size:255;not null"`

	// Password is stored as provided, without hashing.
	Password string `json:"password" gorm:"size:255;not null"`

	// FirstName is an optional profile field.
	FirstName string `json:"firstName"`

	// LastName is an optional profile field.
	LastName string `json:"lastName"`

	// DateOfBirth is an optional calendar date, nil when not provided.
	DateOfBirth *Date `json:"dob"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"-"`
}
