package booking

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hotel-booking/apperrors"
	"hotel-booking/logger"
	bookingService "hotel-booking/services/booking"
	"hotel-booking/types"
	bookingTypes "hotel-booking/types/booking"

	"github.com/gofiber/fiber/v2"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Service *bookingService.BookingService
	Logger  *logger.AsyncLogger
}

// NewBookingController creates a new booking controller
func NewBookingController(service *bookingService.BookingService, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		Service: service,
		Logger:  asyncLogger,
	}
}

// statusForError maps a classified business failure to an HTTP status.
// Unclassified errors (storage failures) become 500.
func statusForError(err error) int {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindNotFound:
			return fiber.StatusNotFound
		case apperrors.KindPaymentRequired:
			return fiber.StatusPaymentRequired
		case apperrors.KindConflict:
			return fiber.StatusForbidden
		}
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		logger.Error("Unexpected error in booking operation", err)
		message = "Database error"
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: message,
		Data:    nil,
	})
}

func userIDFromContext(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userID").(uint)
	return userID, ok && userID > 0
}

// Show returns the authenticated user's current booking with its room
func (bc *BookingController) Show(c *fiber.Ctx) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Data:    nil,
		})
	}

	myBooking, err := bc.Service.GetCurrentBooking(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data: bookingTypes.BookingResponse{
			ID:   myBooking.ID,
			Room: myBooking.Room,
		},
	})
}

// Store creates a new booking for the authenticated user
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error("Invalid booking request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "roomId is required",
			Data:    nil,
		})
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Data:    nil,
		})
	}

	bookingID, err := bc.Service.CreateBooking(c.UserContext(), userID, *req.RoomID)

	status := fiber.StatusOK
	if err != nil {
		status = statusForError(err)
	}
	bc.Logger.Log(types.LogEntry{
		Method:     c.Method(),
		URL:        c.OriginalURL(),
		StatusCode: status,
		UserID:     &userID,
		CreatedAt:  time.Now(),
	})

	if err != nil {
		return respondError(c, err)
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %d", bookingID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking created successfully",
		Data:    bookingTypes.BookingIDResponse{BookingID: bookingID},
	})
}

// Update changes the room of an existing booking
func (bc *BookingController) Update(c *fiber.Ctx) error {
	bookingIDParam, err := strconv.ParseUint(c.Params("bookingId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking ID",
			Data:    nil,
		})
	}

	var req bookingTypes.BookingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error("Invalid booking request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "roomId is required",
			Data:    nil,
		})
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
			Data:    nil,
		})
	}

	bookingID, err := bc.Service.UpdateBooking(c.UserContext(), userID, *req.RoomID, uint(bookingIDParam))

	status := fiber.StatusOK
	if err != nil {
		status = statusForError(err)
	}
	bc.Logger.Log(types.LogEntry{
		Method:     c.Method(),
		URL:        c.OriginalURL(),
		StatusCode: status,
		UserID:     &userID,
		CreatedAt:  time.Now(),
	})

	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking updated successfully",
		Data:    bookingTypes.BookingIDResponse{BookingID: bookingID},
	})
}
