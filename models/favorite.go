package models

import "time"

// Favorite is unique per (user, destination); the composite unique index is
// what makes AddFavorite safe under concurrent requests.
type Favorite struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"column:user_id;not null;uniqueIndex:idx_favorite_user_destination,priority:1" json:"userId"`
	DestinationID uint      `gorm:"column:destination_id;not null;index;uniqueIndex:idx_favorite_user_destination,priority:2" json:"destinationId"`
	CreatedAt     time.Time `json:"createdAt"`

	User        *User        `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Destination *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
}
