package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotel-booking/models/enrollment"
)

// EnrollmentRepository is the read-only enrollment directory.
type EnrollmentRepository interface {
	// Get a user's enrollment. Returns (nil, nil) when the user has none.
	FindByUserID(ctx context.Context, userID uint) (*enrollment.Enrollment, error)
}

// GORM implementation.
type GormEnrollmentRepository struct {
	db *gorm.DB
}

func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

func (r *GormEnrollmentRepository) FindByUserID(ctx context.Context, userID uint) (*enrollment.Enrollment, error) {
	var e enrollment.Enrollment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
