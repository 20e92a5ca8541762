package address

import (
	"time"
)

// Address represents the address attached to an enrollment
type Address struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CEP           *string `gorm:"size:255" json:"cep,omitempty"`
	Street        *string `gorm:"size:255" json:"street,omitempty"`
	City          *string `gorm:"size:255" json:"city,omitempty"`
	State         *string `gorm:"size:255" json:"state,omitempty"`
	Number        *string `gorm:"size:255" json:"number,omitempty"`
	Neighborhood  *string `gorm:"size:255" json:"neighborhood,omitempty"`
	AddressDetail *string `gorm:"size:255" json:"address_detail,omitempty"`

	// Foreign key for enrollment relationship (one address per enrollment)
	EnrollmentID uint `gorm:"not null;uniqueIndex" json:"enrollment_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
