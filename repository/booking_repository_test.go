package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"hotel-booking/database"
	bookingModel "hotel-booking/models/booking"
	hotelModel "hotel-booking/models/hotel"
	userModel "hotel-booking/models/user"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.MigrateForTest(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *userModel.User {
	t.Helper()

	u := userModel.User{Uuid: "uuid-" + email, Email: email, Password: "hashed"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &u
}

func seedRoom(t *testing.T, db *gorm.DB, capacity int) *hotelModel.Room {
	t.Helper()

	h := hotelModel.Hotel{Name: "Test Hotel"}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	room := hotelModel.Room{Name: "101", Capacity: capacity, HotelID: h.ID}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return &room
}

func TestGormBookingRepository_CreateAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	room := seedRoom(t, db, 3)
	u1 := seedUser(t, db, "one@test.com")
	u2 := seedUser(t, db, "two@test.com")

	count, err := repo.CountByRoomID(ctx, room.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty room, got %d bookings", count)
	}

	if _, err := repo.Create(ctx, room.ID, u1.ID); err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := repo.Create(ctx, room.ID, u2.ID); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	count, err = repo.CountByRoomID(ctx, room.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 bookings, got %d", count)
	}
}

func TestGormBookingRepository_FindByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	got, err := repo.FindByID(ctx, 12345)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing booking, got %+v", got)
	}

	room := seedRoom(t, db, 3)
	u := seedUser(t, db, "one@test.com")
	created, err := repo.Create(ctx, room.ID, u.ID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	got, err = repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got == nil || got.UserID != u.ID || got.RoomID != room.ID {
		t.Fatalf("unexpected booking: %+v", got)
	}
}

func TestGormBookingRepository_FindFirstByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "one@test.com")

	got, err := repo.FindFirstByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find first: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil when user has no booking, got %+v", got)
	}

	roomA := seedRoom(t, db, 3)
	roomB := seedRoom(t, db, 3)

	first, err := repo.Create(ctx, roomA.ID, u.ID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if _, err := repo.Create(ctx, roomB.ID, u.ID); err != nil {
		t.Fatalf("create second booking: %v", err)
	}

	got, err = repo.FindFirstByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find first: %v", err)
	}
	if got == nil || got.ID != first.ID {
		t.Fatalf("expected first booking %d, got %+v", first.ID, got)
	}
	if got.Room.ID != roomA.ID || got.Room.Capacity != roomA.Capacity {
		t.Fatalf("expected room preloaded, got %+v", got.Room)
	}
}

func TestGormBookingRepository_UpdateRoom(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormBookingRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "one@test.com")
	roomA := seedRoom(t, db, 3)
	roomB := seedRoom(t, db, 3)

	created, err := repo.Create(ctx, roomA.ID, u.ID)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	updated, err := repo.UpdateRoom(ctx, created.ID, roomB.ID)
	if err != nil {
		t.Fatalf("update room: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("expected booking ID %d, got %d", created.ID, updated.ID)
	}
	if updated.RoomID != roomB.ID {
		t.Fatalf("expected room %d, got %d", roomB.ID, updated.RoomID)
	}

	var persisted bookingModel.Booking
	if err := db.First(&persisted, created.ID).Error; err != nil {
		t.Fatalf("reload booking: %v", err)
	}
	if persisted.RoomID != roomB.ID {
		t.Fatalf("room change not persisted, got %d", persisted.RoomID)
	}
}
