package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"venue_booking/constants"
	"venue_booking/database"
	"venue_booking/helper"
	"venue_booking/model"
	"venue_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxConflictRetries bounds internal retries before a conflict
// surfaces to the caller as a store error.
const maxConflictRetries = 3

// txResult carries a capacity/validation failure out of a
// transactional attempt so the handler can map it onto a response.
type txResult struct {
	status  int
	message string
	err     error
}

func okResult() txResult { return txResult{} }

func (r txResult) failed() bool { return r.err != nil }

func isConflictError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "could not serialize access")
}

// withConflictRetry reruns an attempt whose error came from lock
// contention. Anything else surfaces on the first try.
func withConflictRetry(attempt func() txResult) txResult {
	var res txResult
	for try := 0; try < maxConflictRetries; try++ {
		res = attempt()
		if !res.failed() || !isConflictError(res.err) {
			return res
		}
	}
	return res
}

// GetAvailableSeats answers how many seats remain free for the window
// [reservationTime, reservationTime + duration). Same overlap
// semantics as create, so polling then booking sees consistent
// numbers absent concurrent interference.
func GetAvailableSeats(c *fiber.Ctx) error {
	db := database.DB
	venueId := uint(c.Locals("inputId").(int))

	reservationTime := c.Query("reservationTime")
	duration := c.Query("duration", "1h")

	start, err := utils.ParseTime(reservationTime)
	if reservationTime == "" || err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RESERVATION_TIME, err)
	}

	var venue model.Venue
	if err := db.First(&venue, venueId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	end := start.Add(helper.ResolveDuration(duration))
	overlapping, err := helper.OverlappingReservations(db, venueId, start, end, 0)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	available := helper.AvailableSeats(venue.TotalSeats, helper.SumGuests(overlapping))
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"availableSeats": available,
	})
}

func GetReservationById(c *fiber.Ctx) error {
	db := database.DB
	reservationId := uint(c.Locals("inputId").(int))

	var reservation model.Reservation
	if err := db.Preload("Venue").First(&reservation, reservationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	summary := model.ReservationSummary{
		ID:              reservation.ID,
		PublicCode:      reservation.PublicCode,
		VenueId:         reservation.VenueId,
		VenueName:       reservation.Venue.Name,
		TotalSeats:      reservation.Venue.TotalSeats,
		Guests:          reservation.Guests,
		ReservationTime: reservation.ReservationTime,
		Duration:        reservation.Duration,
		GuestEmail:      reservation.GuestEmail,
		GuestName:       reservation.GuestName,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

func CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateReservation").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	start, ok := c.Locals("reservationStart").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var created model.Reservation
	res := withConflictRetry(func() txResult {
		return createReservationTx(input, start, &created)
	})
	if res.failed() {
		return utils.ErrorResponse(c, res.status, res.message, res.err)
	}

	// Post-commit, fire-and-forget: never rolls back the create.
	helper.SendReservationConfirmation(&created)
	BroadcastReservationEvent(created.VenueId, "created", &created)

	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

// createReservationTx runs the capacity-guarded create. The venue row
// lock is held from the overlap read through the insert, which closes
// the check-then-write window; concurrent creates on the same venue
// serialize behind it.
func createReservationTx(input model.CreateReservationInput, start time.Time, created *model.Reservation) txResult {
	db := database.DB
	tx := db.Begin()

	var venue model.Venue
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, input.VenueId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txResult{fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err}
		}
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	// Hard limit: one reservation may never ask for more than the
	// whole venue, regardless of current occupancy.
	if input.Guests > venue.TotalSeats {
		tx.Rollback()
		msg := fmt.Sprintf("Cannot exceed total venue capacity of %d seats.", venue.TotalSeats)
		return txResult{fiber.StatusBadRequest, msg, errors.New("capacity exceeded")}
	}

	end := start.Add(helper.ResolveDuration(input.Duration))
	overlapping, err := helper.OverlappingReservations(tx, venue.ID, start, end, 0)
	if err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	available := helper.AvailableSeats(venue.TotalSeats, helper.SumGuests(overlapping))
	if input.Guests > available {
		tx.Rollback()
		msg := fmt.Sprintf("Only %d seats available at this time.", available)
		return txResult{fiber.StatusBadRequest, msg, errors.New("slot full")}
	}

	reservation := model.Reservation{
		PublicCode:      uuid.New().String(),
		VenueId:         venue.ID,
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		GuestPhone:      input.GuestPhone,
		Guests:          input.Guests,
		ReservationTime: start,
		Duration:        input.Duration,
	}
	if err := tx.Create(&reservation).Error; err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.CREATE_RESERVATION_FAIL, err}
	}

	if err := tx.Commit().Error; err != nil {
		return txResult{fiber.StatusInternalServerError, constants.CREATE_RESERVATION_FAIL, err}
	}
	*created = reservation
	return okResult()
}

func EditReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditReservation").(model.EditReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	start, ok := c.Locals("reservationStart").(time.Time)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	reservationId := uint(c.Locals("inputId").(int))

	var updated model.Reservation
	res := withConflictRetry(func() txResult {
		return editReservationTx(reservationId, input, start, &updated)
	})
	if res.failed() {
		return utils.ErrorResponse(c, res.status, res.message, res.err)
	}

	helper.SendReservationUpdated(&updated)
	BroadcastReservationEvent(updated.VenueId, "updated", &updated)

	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func editReservationTx(reservationId uint, input model.EditReservationInput, start time.Time, updated *model.Reservation) txResult {
	db := database.DB
	tx := db.Begin()

	// Locked read, reservation row before venue row; cancel takes the
	// same lock order, so an edit never saves a row a concurrent
	// cancel already deleted.
	var reservation model.Reservation
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, reservationId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txResult{fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err}
		}
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	var venue model.Venue
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, reservation.VenueId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txResult{fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err}
		}
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	if input.Guests > venue.TotalSeats {
		tx.Rollback()
		msg := fmt.Sprintf("Cannot exceed total venue capacity of %d seats.", venue.TotalSeats)
		return txResult{fiber.StatusBadRequest, msg, errors.New("capacity exceeded")}
	}

	// Rescheduling into an already-elapsed slot is rejected.
	if !start.After(utils.Now()) {
		tx.Rollback()
		return txResult{fiber.StatusBadRequest, constants.PAST_MODIFICATION, errors.New("past modification")}
	}

	end := start.Add(helper.ResolveDuration(input.Duration))
	overlapping, err := helper.OverlappingReservations(tx, venue.ID, start, end, reservation.ID)
	if err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	bookedGuests := helper.SumGuests(overlapping)
	available := helper.AvailableSeats(venue.TotalSeats, bookedGuests)
	if input.Guests > available {
		tx.Rollback()
		msg := fmt.Sprintf("Only %d seats available at this time.", available)
		return txResult{fiber.StatusBadRequest, msg, errors.New("slot full")}
	}

	reservation.ReservationTime = start
	reservation.Guests = input.Guests
	reservation.Duration = input.Duration
	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.EDIT_RESERVATION_FAIL, err}
	}

	// Display counter only; availability never reads it.
	venue.BookedSeats = bookedGuests + input.Guests
	if err := tx.Save(&venue).Error; err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.EDIT_RESERVATION_FAIL, err}
	}

	if err := tx.Commit().Error; err != nil {
		return txResult{fiber.StatusInternalServerError, constants.EDIT_RESERVATION_FAIL, err}
	}
	*updated = reservation
	return okResult()
}

// CancelReservation frees capacity; no availability check needed.
func CancelReservation(c *fiber.Ctx) error {
	reservationId := uint(c.Locals("inputId").(int))

	var cancelled model.Reservation
	res := withConflictRetry(func() txResult {
		return cancelReservationTx(reservationId, &cancelled)
	})
	if res.failed() {
		return utils.ErrorResponse(c, res.status, res.message, res.err)
	}

	helper.SendReservationCancelled(&cancelled)
	BroadcastReservationEvent(cancelled.VenueId, "cancelled", &cancelled)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Reservation cancelled successfully",
	})
}

func cancelReservationTx(reservationId uint, cancelled *model.Reservation) txResult {
	db := database.DB
	tx := db.Begin()

	// Locked read, same reservation-then-venue order as edit. The
	// loser of two concurrent cancels resumes after the winner's
	// commit, sees the row gone and gets not-found instead of
	// settling the counter a second time.
	var reservation model.Reservation
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&reservation, reservationId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txResult{fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err}
		}
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	// Venue row lock keeps the counter decrement atomic under
	// concurrent cancels.
	var venue model.Venue
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&venue, reservation.VenueId).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return txResult{fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err}
		}
		return txResult{fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err}
	}

	// Floored at zero, the counter may have drifted.
	venue.BookedSeats = venue.BookedSeats - reservation.Guests
	if venue.BookedSeats < 0 {
		venue.BookedSeats = 0
	}
	if err := tx.Save(&venue).Error; err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.DELETE_RESERVATION_FAIL, err}
	}

	if err := tx.Delete(&model.Reservation{}, reservation.ID).Error; err != nil {
		tx.Rollback()
		return txResult{fiber.StatusInternalServerError, constants.DELETE_RESERVATION_FAIL, err}
	}

	if err := tx.Commit().Error; err != nil {
		return txResult{fiber.StatusInternalServerError, constants.DELETE_RESERVATION_FAIL, err}
	}
	*cancelled = reservation
	return okResult()
}
