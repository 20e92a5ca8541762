package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-booking/database"
	userModel "hotel-booking/models/user"
	"hotel-booking/utils"
)

func setupAuthTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.MigrateForTest(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	app.Get("/protected", IsAuthenticated(db), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("userID").(uint)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app, db
}

func TestIsAuthenticated_MissingToken(t *testing.T) {
	app, _ := setupAuthTest(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestIsAuthenticated_MalformedHeader(t *testing.T) {
	app, _ := setupAuthTest(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "not-a-bearer-token")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestIsAuthenticated_GarbageToken(t *testing.T) {
	app, _ := setupAuthTest(t)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestIsAuthenticated_ValidTokenWithoutSession(t *testing.T) {
	app, db := setupAuthTest(t)

	u := userModel.User{Uuid: "uuid-1", Email: "one@test.com", Password: "hashed"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := utils.GenerateAuthToken(u.ID)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// No session row: the signed token alone is not enough.
	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}
}

func TestIsAuthenticated_ValidSession(t *testing.T) {
	app, db := setupAuthTest(t)

	u := userModel.User{Uuid: "uuid-1", Email: "one@test.com", Password: "hashed"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := utils.GenerateAuthToken(u.ID)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	session := userModel.Session{UserID: u.ID, Token: token}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("create session: %v", err)
	}

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with valid session, got %d", resp.StatusCode)
	}
}
