// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
type User struct {
	// ID is the opaque identifier assigned at registration.
	ID string `gorm:"column:user_id;primaryKey;size:36"`

	// Email is stored trimmed and lowercased. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Name is the display name.
	Name string `gorm:"size:255;not null"`

	// PasswordHash is the bcrypt hash of the registration secret.
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`

	// CreatedAt is set once at registration.
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for gorm.
func (User) TableName() string { return "users" }
