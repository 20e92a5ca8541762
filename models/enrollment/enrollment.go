package enrollment

import (
	"hotel-booking/models/address"
	"hotel-booking/models/user"
	"time"
)

// Enrollment holds the subscription data a user fills in before buying a
// ticket. A user has at most one enrollment.
type Enrollment struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	CPF      string    `gorm:"type:varchar(32);not null" json:"cpf"`
	Birthday time.Time `gorm:"not null" json:"birthday"`
	Phone    string    `gorm:"type:varchar(20);not null" json:"phone"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Address *address.Address `gorm:"foreignKey:EnrollmentID" json:"address,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
