package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-booking/models/hotel"
)

// HotelRepository is the read-only room/hotel directory. Lookups return
// (nil, nil) when the record does not exist; a non-nil error always means a
// storage failure.
type HotelRepository interface {
	// List all hotels.
	FindHotels(ctx context.Context) ([]hotel.Hotel, error)
	// Get a hotel with its rooms preloaded.
	FindHotelWithRooms(ctx context.Context, hotelID uint) (*hotel.Hotel, error)
	// Get a single room by ID.
	FindRoomByID(ctx context.Context, roomID uint) (*hotel.Room, error)
}

// GORM implementation.
type GormHotelRepository struct {
	db *gorm.DB
}

func NewGormHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

func (r *GormHotelRepository) FindHotels(ctx context.Context) ([]hotel.Hotel, error) {
	var hotels []hotel.Hotel
	if err := r.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *GormHotelRepository) FindHotelWithRooms(ctx context.Context, hotelID uint) (*hotel.Hotel, error) {
	var h hotel.Hotel
	err := r.db.WithContext(ctx).Preload("Rooms").First(&h, hotelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormHotelRepository) FindRoomByID(ctx context.Context, roomID uint) (*hotel.Room, error) {
	var room hotel.Room
	err := r.db.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}
