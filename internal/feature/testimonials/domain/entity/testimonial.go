// Package entity defines the domain entities for the testimonials feature.
package entity

import "time"

// Testimonial is a client's statement about a project.
type Testimonial struct {
	ID        string    `gorm:"column:testimonial_id;primaryKey;size:36"`
	ProjectID string    `gorm:"column:project_id;size:36;not null;index"`
	UserID    string    `gorm:"column:user_id;size:36;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	Rating    *float64
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for gorm.
func (Testimonial) TableName() string { return "testimonials" }
