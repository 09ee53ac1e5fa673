package models

import (
	"time"

	"gorm.io/datatypes"
)

// Page holds static site content (about, faq, ...) addressed by slug.
// Body is free-form JSON owned by the frontend.
type Page struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Slug      string         `gorm:"uniqueIndex;size:150;not null" json:"slug"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Body      datatypes.JSON `json:"body"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
