package ticket

import (
	"hotel-booking/models/enrollment"
	"time"
)

// TicketStatus is the payment state of a ticket
type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

// TicketType describes what a ticket grants: remote attendance or in-person,
// with or without hotel accommodation.
type TicketType struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"type:varchar(255);not null" json:"name"`
	Price         int    `gorm:"not null" json:"price"`
	IsRemote      bool   `gorm:"not null" json:"is_remote"`
	IncludesHotel bool   `gorm:"not null" json:"includes_hotel"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Ticket belongs to exactly one enrollment
type Ticket struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for ticket type relationship
	TicketTypeID uint       `gorm:"not null;index" json:"ticket_type_id"`
	TicketType   TicketType `gorm:"foreignKey:TicketTypeID" json:"ticket_type"`

	// Foreign key for enrollment relationship
	EnrollmentID uint                  `gorm:"not null;index" json:"enrollment_id"`
	Enrollment   enrollment.Enrollment `gorm:"foreignKey:EnrollmentID" json:"enrollment"`

	Status TicketStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
