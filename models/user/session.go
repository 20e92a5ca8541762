package user

import (
	"time"
)

// Session stores one issued login token per sign-in. The auth middleware
// rejects tokens that have no matching session row.
type Session struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user"`

	Token string `gorm:"type:text;not null" json:"token"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
