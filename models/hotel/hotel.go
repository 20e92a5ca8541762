package hotel

import (
	"time"
)

// Hotel groups the rooms available for booking
type Hotel struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Image string `gorm:"type:varchar(2048)" json:"image"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Room belongs to a hotel; Capacity bounds how many bookings may target it
type Room struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Capacity int    `gorm:"not null" json:"capacity"`

	// Foreign key for hotel relationship
	HotelID uint   `gorm:"not null;index" json:"hotel_id"`
	Hotel   *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
