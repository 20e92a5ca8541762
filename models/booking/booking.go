package booking

import (
	"hotel-booking/models/hotel"
	"hotel-booking/models/user"
	"time"
)

// Booking represents one user's occupancy of one room. Several bookings may
// reference the same room, up to its capacity.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	// Foreign key for rooms relationship
	RoomID uint       `gorm:"not null;index" json:"room_id"`
	Room   hotel.Room `gorm:"foreignKey:RoomID" json:"room"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
