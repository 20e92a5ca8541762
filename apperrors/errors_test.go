package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsKind(t *testing.T) {
	if !IsKind(NotFound(), KindNotFound) {
		t.Fatal("expected NotFound to match KindNotFound")
	}
	if !IsKind(Conflict("room is full"), KindConflict) {
		t.Fatal("expected Conflict to match KindConflict")
	}
	if !IsKind(PaymentRequired(), KindPaymentRequired) {
		t.Fatal("expected PaymentRequired to match KindPaymentRequired")
	}
	if IsKind(NotFound(), KindConflict) {
		t.Fatal("kinds must not match across variants")
	}
	if IsKind(errors.New("boom"), KindNotFound) {
		t.Fatal("plain errors must stay unclassified")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w", Conflict("Booking owner does not match"))
	if !IsKind(wrapped, KindConflict) {
		t.Fatal("expected wrapped error to keep its kind")
	}
}

func TestConflictCarriesReason(t *testing.T) {
	err := Conflict("There are no more available schedules for this room")
	if err.Error() != "There are no more available schedules for this room" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
