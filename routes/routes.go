package routes

import (
	"hotel-booking/controllers/auth"
	"hotel-booking/controllers/booking"
	"hotel-booking/controllers/hotel"
	"hotel-booking/logger"
	"hotel-booking/middleware"
	"hotel-booking/repository"
	bookingService "hotel-booking/services/booking"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	hotelRepo := repository.NewGormHotelRepository(db)
	enrollmentRepo := repository.NewGormEnrollmentRepository(db)
	ticketRepo := repository.NewGormTicketRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	bookingSvc := bookingService.NewBookingService(hotelRepo, enrollmentRepo, ticketRepo, bookingRepo)

	authController := auth.NewAuthController(db, asyncLogger)
	bookingController := booking.NewBookingController(bookingSvc, asyncLogger)
	hotelController := hotel.NewHotelController(hotelRepo)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/auth/register", authController.Register)
	api.Post("/auth/login", authController.Login)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/booking", middleware.IsAuthenticated(db))
	bookingGroup.Get("/", bookingController.Show)
	bookingGroup.Post("/", bookingController.Store)
	bookingGroup.Put("/:bookingId", bookingController.Update)

	/*=============================================================================
	| Hotel Routes
	===============================================================================*/
	hotelGroup := api.Group("/hotels", middleware.IsAuthenticated(db))
	hotelGroup.Get("/", hotelController.Index)
	hotelGroup.Get("/:hotelId", hotelController.Show)

	/*=============================================================================
	| Session Routes
	===============================================================================*/
	api.Post("/auth/logout", middleware.IsAuthenticated(db), authController.LogOut)
}
