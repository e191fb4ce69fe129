// Package entity defines the domain entities for the blog feature.
package entity

import "time"

// Post is a blog article addressed by its slug.
type Post struct {
	ID        string    `gorm:"column:post_id;primaryKey;size:36"`
	Slug      string    `gorm:"column:post_slug;size:255;not null;uniqueIndex"`
	Title     string    `gorm:"size:255;not null"`
	Content   string    `gorm:"type:text;not null"`
	Category  *string   `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName returns the table name for gorm.
func (Post) TableName() string { return "blog_posts" }
