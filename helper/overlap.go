package helper

import (
	"time"
	"venue_booking/model"

	"gorm.io/gorm"
)

// OverlappingReservations returns every reservation on the venue whose
// stored start time falls in [start, end). Intervals are half-open, so
// a reservation ending exactly at another's start never conflicts.
// excludeId skips one reservation (a modify excludes itself); pass 0
// for no exclusion. Runs on whatever db handle the caller holds, so a
// locking transaction sees a consistent read.
func OverlappingReservations(db *gorm.DB, venueId uint, start, end time.Time, excludeId uint) ([]model.Reservation, error) {
	query := db.
		Where("venue_id = ?", venueId).
		Where("reservation_time >= ? AND reservation_time < ?", start, end)
	if excludeId != 0 {
		query = query.Where("id <> ?", excludeId)
	}

	reservations := []model.Reservation{}
	if err := query.Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// SumGuests folds party sizes, no side effects.
func SumGuests(reservations []model.Reservation) int {
	total := 0
	for _, r := range reservations {
		total += r.Guests
	}
	return total
}

// AvailableSeats is the capacity gate: remaining capacity floored at
// zero, never negative.
func AvailableSeats(totalSeats, bookedGuests int) int {
	if available := totalSeats - bookedGuests; available > 0 {
		return available
	}
	return 0
}
