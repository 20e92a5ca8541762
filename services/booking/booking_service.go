package booking

import (
	"context"

	"hotel-booking/apperrors"
	hotelModel "hotel-booking/models/hotel"
	ticketModel "hotel-booking/models/ticket"
	"hotel-booking/repository"
)

// BookingService decides whether a booking may be created or moved, given the
// state of the user's enrollment, ticket and the target room's occupancy.
// It is a pure decision function over its repository reads: every failure is
// returned at the point of detection and nothing is retried.
type BookingService struct {
	hotelRepo      repository.HotelRepository
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
	bookingRepo    repository.BookingRepository
}

// NewBookingService creates a new booking service with injected repositories
func NewBookingService(
	hotelRepo repository.HotelRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
	bookingRepo repository.BookingRepository,
) *BookingService {
	return &BookingService{
		hotelRepo:      hotelRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		bookingRepo:    bookingRepo,
	}
}

// CurrentBooking is what GetCurrentBooking returns: the booking ID and its room.
type CurrentBooking struct {
	ID   uint            `json:"id"`
	Room hotelModel.Room `json:"Room"`
}

// GetCurrentBooking returns the first booking owned by the user, including
// the associated room.
func (s *BookingService) GetCurrentBooking(ctx context.Context, userID uint) (*CurrentBooking, error) {
	myBooking, err := s.bookingRepo.FindFirstByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if myBooking == nil {
		return nil, apperrors.NotFound()
	}

	return &CurrentBooking{ID: myBooking.ID, Room: myBooking.Room}, nil
}

// CreateBooking reserves a room for the user and returns the new booking ID.
// Checks run in a fixed order and short-circuit on the first failure: room
// existence, room capacity, enrollment, ticket payment, ticket eligibility.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint) (uint, error) {
	room, err := s.hotelRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room == nil {
		return 0, apperrors.NotFound()
	}

	if err := s.checkRoomCapacity(ctx, room); err != nil {
		return 0, err
	}

	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if enrollment == nil {
		return 0, apperrors.NotFound()
	}

	ticket, err := s.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return 0, err
	}
	if ticket == nil || ticket.Status == ticketModel.TicketStatusReserved {
		return 0, apperrors.PaymentRequired()
	}
	if !ticket.TicketType.IncludesHotel || ticket.TicketType.IsRemote {
		return 0, apperrors.Conflict("Ticket does not fulfill all the requirements")
	}

	newBooking, err := s.bookingRepo.Create(ctx, room.ID, userID)
	if err != nil {
		return 0, err
	}

	return newBooking.ID, nil
}

// UpdateBooking moves an existing booking to another room and returns the
// booking ID. Ownership is checked before the target room so a non-owner
// cannot probe room occupancy through this operation.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID uint) (uint, error) {
	existing, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, apperrors.NotFound()
	}
	if existing.UserID != userID {
		return 0, apperrors.Conflict("Booking owner does not match")
	}

	room, err := s.hotelRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room == nil {
		return 0, apperrors.NotFound()
	}

	// The occupancy count includes the booking being moved when it already
	// targets this room, so a no-op move at full capacity is rejected.
	if err := s.checkRoomCapacity(ctx, room); err != nil {
		return 0, err
	}

	updated, err := s.bookingRepo.UpdateRoom(ctx, bookingID, room.ID)
	if err != nil {
		return 0, err
	}

	return updated.ID, nil
}

// checkRoomCapacity rejects the room when its current occupancy has reached
// capacity. The count and the subsequent insert/update run without a
// transaction, so two concurrent requests can both pass this check and
// overbook the room.
func (s *BookingService) checkRoomCapacity(ctx context.Context, room *hotelModel.Room) error {
	count, err := s.bookingRepo.CountByRoomID(ctx, room.ID)
	if err != nil {
		return err
	}
	if count >= int64(room.Capacity) {
		return apperrors.Conflict("There are no more available schedules for this room")
	}
	return nil
}
