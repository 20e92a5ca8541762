package repository

import (
	"context"
	"testing"
	"time"

	addressModel "hotel-booking/models/address"
	enrollmentModel "hotel-booking/models/enrollment"
	hotelModel "hotel-booking/models/hotel"
	ticketModel "hotel-booking/models/ticket"
)

func TestGormHotelRepository_FindRoomByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormHotelRepository(db)
	ctx := context.Background()

	got, err := repo.FindRoomByID(ctx, 999)
	if err != nil {
		t.Fatalf("find room: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing room, got %+v", got)
	}

	room := seedRoom(t, db, 4)
	got, err = repo.FindRoomByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("find room: %v", err)
	}
	if got == nil || got.Capacity != 4 {
		t.Fatalf("unexpected room: %+v", got)
	}
}

func TestGormHotelRepository_FindHotelWithRooms(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormHotelRepository(db)
	ctx := context.Background()

	h := hotelModel.Hotel{Name: "Driven Resort"}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	for _, name := range []string{"101", "102"} {
		room := hotelModel.Room{Name: name, Capacity: 2, HotelID: h.ID}
		if err := db.Create(&room).Error; err != nil {
			t.Fatalf("seed room: %v", err)
		}
	}

	got, err := repo.FindHotelWithRooms(ctx, h.ID)
	if err != nil {
		t.Fatalf("find hotel: %v", err)
	}
	if got == nil || len(got.Rooms) != 2 {
		t.Fatalf("expected hotel with 2 rooms, got %+v", got)
	}

	hotels, err := repo.FindHotels(ctx)
	if err != nil {
		t.Fatalf("list hotels: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}
}

func TestGormEnrollmentRepository_FindByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormEnrollmentRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "one@test.com")

	got, err := repo.FindByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find enrollment: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil when user has no enrollment, got %+v", got)
	}

	e := enrollmentModel.Enrollment{
		Name:     "Test User",
		CPF:      "12345678900",
		Birthday: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		Phone:    "21999999999",
		UserID:   u.ID,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	street := "Main St"
	addr := addressModel.Address{Street: &street, EnrollmentID: e.ID}
	if err := db.Create(&addr).Error; err != nil {
		t.Fatalf("seed address: %v", err)
	}

	got, err = repo.FindByUserID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find enrollment: %v", err)
	}
	if got == nil || got.ID != e.ID {
		t.Fatalf("unexpected enrollment: %+v", got)
	}
}

func TestGormTicketRepository_FindByEnrollmentID(t *testing.T) {
	db := openTestDB(t)
	repo := NewGormTicketRepository(db)
	ctx := context.Background()

	got, err := repo.FindByEnrollmentID(ctx, 999)
	if err != nil {
		t.Fatalf("find ticket: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil when enrollment has no ticket, got %+v", got)
	}

	u := seedUser(t, db, "one@test.com")
	e := enrollmentModel.Enrollment{
		Name:     "Test User",
		CPF:      "12345678900",
		Birthday: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		Phone:    "21999999999",
		UserID:   u.ID,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}
	tt := ticketModel.TicketType{Name: "Presential + Hotel", Price: 600, IsRemote: false, IncludesHotel: true}
	if err := db.Create(&tt).Error; err != nil {
		t.Fatalf("seed ticket type: %v", err)
	}
	tk := ticketModel.Ticket{TicketTypeID: tt.ID, EnrollmentID: e.ID, Status: ticketModel.TicketStatusPaid}
	if err := db.Create(&tk).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}

	got, err = repo.FindByEnrollmentID(ctx, e.ID)
	if err != nil {
		t.Fatalf("find ticket: %v", err)
	}
	if got == nil || got.ID != tk.ID {
		t.Fatalf("unexpected ticket: %+v", got)
	}
	if !got.TicketType.IncludesHotel || got.TicketType.IsRemote {
		t.Fatalf("expected ticket type preloaded, got %+v", got.TicketType)
	}
	if !got.Status.IsPaid() {
		t.Fatalf("expected paid ticket, got %s", got.Status)
	}
}
