package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-booking/models/ticket"
)

// TicketRepository is the read-only ticket directory.
type TicketRepository interface {
	// Get the ticket bought under an enrollment, with its type preloaded.
	// Returns (nil, nil) when no ticket exists.
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*ticket.Ticket, error)
}

// GORM implementation.
type GormTicketRepository struct {
	db *gorm.DB
}

func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

func (r *GormTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
