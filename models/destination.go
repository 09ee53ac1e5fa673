package models

import "time"

// Destination is curated catalog content. Bookings, favorites, activities
// and images reference it by ID.
type Destination struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Type        string    `gorm:"size:100;index" json:"type"`
	Rating      float64   `json:"rating"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"column:image_url;size:512" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
