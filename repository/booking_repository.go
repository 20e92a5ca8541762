package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-booking/models/booking"
)

// BookingRepository is the booking store consumed by the rule engine.
// Lookups return (nil, nil) when the record does not exist.
type BookingRepository interface {
	// Get a booking by ID.
	FindByID(ctx context.Context, bookingID uint) (*booking.Booking, error)
	// Get the first booking owned by a user, with its room preloaded.
	FindFirstByUserID(ctx context.Context, userID uint) (*booking.Booking, error)
	// Current occupancy of a room.
	CountByRoomID(ctx context.Context, roomID uint) (int64, error)
	// Insert a new booking row.
	Create(ctx context.Context, roomID, userID uint) (*booking.Booking, error)
	// Move an existing booking to another room.
	UpdateRoom(ctx context.Context, bookingID, roomID uint) (*booking.Booking, error)
}

// GORM implementation.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) FindByID(ctx context.Context, bookingID uint) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.WithContext(ctx).First(&b, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) FindFirstByUserID(ctx context.Context, userID uint) (*booking.Booking, error) {
	var b booking.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("id").
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) CountByRoomID(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormBookingRepository) Create(ctx context.Context, roomID, userID uint) (*booking.Booking, error) {
	b := booking.Booking{
		UserID: userID,
		RoomID: roomID,
	}
	if err := r.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *GormBookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID uint) (*booking.Booking, error) {
	err := r.db.WithContext(ctx).
		Model(&booking.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, bookingID)
}
