package booking

import (
	"hotel-booking/models/hotel"

	"github.com/go-playground/validator/v10"
)

// BookingCreateRequest represents the request payload for creating a booking.
// RoomID is a pointer so that a present-but-zero roomId reaches the rule
// engine (and fails there with NotFound) instead of being rejected as
// malformed input.
type BookingCreateRequest struct {
	RoomID *uint `json:"roomId" validate:"required"`
}

func (req *BookingCreateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// BookingUpdateRequest represents the request payload for changing the room
// of an existing booking
type BookingUpdateRequest struct {
	RoomID *uint `json:"roomId" validate:"required"`
}

func (req *BookingUpdateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(req)
}

// BookingResponse is the payload returned by GET /booking
type BookingResponse struct {
	ID   uint       `json:"id"`
	Room hotel.Room `json:"Room"`
}

// BookingIDResponse is the payload returned by POST and PUT /booking
type BookingIDResponse struct {
	BookingID uint `json:"bookingId"`
}
