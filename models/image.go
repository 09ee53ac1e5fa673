package models

import "time"

type Image struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255" json:"title"`
	URL           string    `gorm:"column:url;size:512;not null" json:"url"`
	Alt           string    `gorm:"size:255" json:"alt"`
	DestinationID *uint     `gorm:"column:destination_id;index" json:"destinationId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`

	Destination *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"-"`
}
