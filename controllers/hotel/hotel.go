package hotel

import (
	"strconv"

	"hotel-booking/logger"
	"hotel-booking/repository"
	"hotel-booking/types"

	"github.com/gofiber/fiber/v2"
)

// HotelController handles read access to the hotel catalog
type HotelController struct {
	Repo repository.HotelRepository
}

// NewHotelController creates a new hotel controller
func NewHotelController(repo repository.HotelRepository) *HotelController {
	return &HotelController{Repo: repo}
}

// Index lists all hotels
func (hc *HotelController) Index(c *fiber.Ctx) error {
	hotels, err := hc.Repo.FindHotels(c.UserContext())
	if err != nil {
		logger.Error("Failed to list hotels", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Hotels retrieved successfully",
		Data:    hotels,
	})
}

// Show returns one hotel with its rooms
func (hc *HotelController) Show(c *fiber.Ctx) error {
	hotelID, err := strconv.ParseUint(c.Params("hotelId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid hotel ID",
			Data:    nil,
		})
	}

	h, err := hc.Repo.FindHotelWithRooms(c.UserContext(), uint(hotelID))
	if err != nil {
		logger.Error("Failed to load hotel", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}
	if h == nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Hotel not found",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Hotel retrieved successfully",
		Data:    h,
	})
}
