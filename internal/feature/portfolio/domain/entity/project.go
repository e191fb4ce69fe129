// Package entity defines the domain entities for the portfolio feature.
package entity

import "time"

// Project is a portfolio entry.
type Project struct {
	ID          string    `gorm:"column:project_id;primaryKey;size:36"`
	Title       string    `gorm:"size:255;not null"`
	Description *string   `gorm:"type:text"`
	MediaURLs   *string   `gorm:"column:media_urls;type:text"`
	Category    *string   `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName returns the table name for gorm.
func (Project) TableName() string { return "projects" }
