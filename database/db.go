package database

import (
	"fmt"
	"os"

	"hotel-booking/logger"
	"hotel-booking/models/address"
	"hotel-booking/models/booking"
	"hotel-booking/models/enrollment"
	"hotel-booking/models/hotel"
	"hotel-booking/models/log"
	"hotel-booking/models/ticket"
	"hotel-booking/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	dbUser := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE") // Optional: "disable", "require", etc.

	// Set default sslmode if not provided
	if sslmode == "" {
		sslmode = "disable"
	}

	// Build PostgreSQL DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, dbUser, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(DB); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	// Create indexes for better performance
	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models
func autoMigrate(db *gorm.DB) error {
	// First, migrate models without foreign key dependencies in stages

	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&user.User{},
		&user.Session{},
		&hotel.Hotel{},
		&ticket.TicketType{},
	}

	for _, model := range stage1Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Models with dependencies on Stage 1
	stage2Models := []interface{}{
		&enrollment.Enrollment{},
		&address.Address{},
		&hotel.Room{},
	}

	for _, model := range stage2Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: Models with dependencies on Stage 2
	stage3Models := []interface{}{
		&ticket.Ticket{},
		&booking.Booking{},
	}

	for _, model := range stage3Models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Remaining models
	remainingModels := []interface{}{
		// Logging
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// Session indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_sessions_token ON sessions(token)").Error; err != nil {
		return fmt.Errorf("failed to create session token index: %w", err)
	}

	// Booking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_user_id ON bookings(user_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking user_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_room_id ON bookings(room_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking room_id index: %w", err)
	}

	// Ticket indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_tickets_enrollment_id ON tickets(enrollment_id)").Error; err != nil {
		return fmt.Errorf("failed to create ticket enrollment_id index: %w", err)
	}

	// Room indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_rooms_hotel_id ON rooms(hotel_id)").Error; err != nil {
		return fmt.Errorf("failed to create room hotel_id index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)").Error; err != nil {
		return fmt.Errorf("failed to create log status_code index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// MigrateForTest runs the staged migrations against an arbitrary database.
// Used by tests running on an in-memory sqlite instance.
func MigrateForTest(db *gorm.DB) error {
	return autoMigrate(db)
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
