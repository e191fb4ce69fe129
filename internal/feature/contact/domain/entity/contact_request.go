// Package entity defines the domain entities for the contact feature.
package entity

import "time"

// ContactRequest is a message submitted through the public contact form.
type ContactRequest struct {
	ID        string    `gorm:"column:request_id;primaryKey;size:36"`
	Name      string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for gorm.
func (ContactRequest) TableName() string { return "contact_requests" }
