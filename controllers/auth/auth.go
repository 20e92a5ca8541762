package auth

import (
	"fmt"
	"os"
	"strings"
	"time"

	"hotel-booking/logger"
	userModel "hotel-booking/models/user"
	"hotel-booking/types"
	authTypes "hotel-booking/types/auth"
	"hotel-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthController struct {
	db             *gorm.DB
	loggerInstance *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{db: db, loggerInstance: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: false,
		Secure:   isProduction, // Only secure in production (HTTPS)
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a new account
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error("Invalid register request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "A valid email and a password of at least 6 characters are required",
			Status:  fiber.StatusBadRequest,
		})
	}

	// Reject duplicate emails before attempting the insert
	var existing userModel.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ErrorResponse{
			Message: "There is already an user with given email",
			Status:  fiber.StatusConflict,
		})
	} else if err != gorm.ErrRecordNotFound {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	newUser := userModel.User{
		Uuid:     uuid.NewString(),
		Email:    strings.ToLower(req.Email),
		Password: hashedPassword,
	}

	if err := h.db.Create(&newUser).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to create user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("User registered successfully. uuid: " + newUser.Uuid)

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "User registered successfully",
		Data: fiber.Map{
			"id":    newUser.ID,
			"email": newUser.Email,
		},
	})
}

// Login verifies credentials and issues a session-backed JWT
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrorResponse{
			Message: "Email and password are required",
			Status:  fiber.StatusBadRequest,
		})
	}

	userInfo, err := utils.GetUserByEmail(h.db, strings.ToLower(req.Email))
	if err != nil {
		if err.Error() == "user not found" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid email or password",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Error finding user by email", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	if !utils.CheckPasswordHash(req.Password, userInfo.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Invalid email or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := utils.GenerateAuthToken(userInfo.ID)
	if err != nil {
		logger.Error("Failed to sign auth token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to sign in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	session := userModel.Session{
		UserID: userInfo.ID,
		Token:  token,
	}
	if err := h.db.Create(&session).Error; err != nil {
		logger.Error("Failed to create session", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to sign in",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, 7*24*60*60)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User logged in successfully. uuid: " + userInfo.Uuid + " at " + currentTime)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data: authTypes.LoginResponse{
			UserID: userInfo.ID,
			Email:  userInfo.Email,
			Token:  token,
		},
	})
}

// LogOut removes the current session so the token stops being accepted
func (h *AuthController) LogOut(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	var token string
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			token = tokenParts[1]
		}
	}
	if token == "" {
		token = c.Cookies("access")
	}
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
			Message: "Authorization token missing",
			Status:  fiber.StatusUnauthorized,
		})
	}

	if err := h.db.Where("token = ?", token).Delete(&userModel.Session{}).Error; err != nil {
		logger.Error("Failed to delete session", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrorResponse{
			Message: "Failed to log out",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", "", -1)

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Logged out successfully",
	})
}
