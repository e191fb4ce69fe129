// Package entity defines the domain entities for the services feature.
package entity

import "time"

// Service is an offering listed on the portfolio.
type Service struct {
	ID          string    `gorm:"column:service_id;primaryKey;size:36"`
	Title       string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	Pricing     *float64  `gorm:"check:pricing >= 0"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for gorm.
func (Service) TableName() string { return "services" }
