package models

import "time"

const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusPending   = "Pending"
	BookingStatusCancelled = "Cancelled"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID        uint      `gorm:"column:user_id;index;not null" json:"userId"`
	DestinationID uint      `gorm:"column:destination_id;index;not null" json:"destinationId"`
	StartDate     time.Time `gorm:"column:start_date;not null" json:"startDate"`
	EndDate       time.Time `gorm:"column:end_date;not null" json:"endDate"`
	Travelers     int       `gorm:"column:travelers;not null;default:1" json:"travelers"`
	Status        string    `gorm:"column:status;size:32;not null;default:Pending" json:"status"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`

	// Pointers so a create never cascades into the referenced rows.
	User        *User        `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Destination *Destination `gorm:"foreignKey:DestinationID;references:ID" json:"destination,omitempty"`
}
