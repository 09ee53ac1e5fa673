package models

import "time"

const (
	ActivityTypeBooking  = "booking"
	ActivityTypeFavorite = "favorite"
)

// Activity is an append-only feed entry. Nothing updates or deletes it.
type Activity struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;not null;index:idx_activity_user_created,priority:1" json:"userId"`
	Type          string    `gorm:"size:50;not null" json:"type"`
	Content       string    `gorm:"type:text" json:"content"`
	DestinationID *uint     `gorm:"column:destination_id;index" json:"destinationId,omitempty"`
	CreatedAt     time.Time `gorm:"index:idx_activity_user_created,priority:2" json:"createdAt"`

	User        *User        `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Destination *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
}
