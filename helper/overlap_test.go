package helper

import (
	"testing"
	"venue_booking/model"
)

func TestSumGuests(t *testing.T) {
	if got := SumGuests(nil); got != 0 {
		t.Fatalf("SumGuests(nil) = %d, want 0", got)
	}

	reservations := []model.Reservation{
		{Guests: 2},
		{Guests: 5},
		{Guests: 1},
	}
	if got := SumGuests(reservations); got != 8 {
		t.Fatalf("SumGuests = %d, want 8", got)
	}
}

func TestAvailableSeats(t *testing.T) {
	cases := []struct {
		name         string
		totalSeats   int
		bookedGuests int
		want         int
	}{
		{"empty venue", 10, 0, 10},
		{"partially booked", 10, 6, 4},
		{"exactly full", 10, 10, 0},
		{"overbooked floors at zero", 10, 14, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AvailableSeats(tc.totalSeats, tc.bookedGuests); got != tc.want {
				t.Fatalf("AvailableSeats(%d, %d) = %d, want %d", tc.totalSeats, tc.bookedGuests, got, tc.want)
			}
		})
	}
}
