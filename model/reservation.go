package model

import "time"

type Reservation struct {
	DTO
	PublicCode      string    `gorm:"uniqueIndex" json:"publicCode"`
	VenueId         uint      `gorm:"not null;index:idx_reservations_venue_start,priority:1" json:"venueId"`
	Venue           Venue     `gorm:"foreignKey:VenueId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `gorm:"not null" json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	Guests          int       `gorm:"not null" json:"guests"`
	ReservationTime time.Time `gorm:"not null;index:idx_reservations_venue_start,priority:2" json:"reservationTime"`
	Duration        string    `json:"duration"`
}

type CreateReservationInput struct {
	VenueId         uint   `json:"venueId" validate:"required"`
	ReservationTime string `json:"reservationTime" validate:"required"`
	Guests          int    `json:"guests" validate:"required,gt=0"`
	GuestEmail      string `json:"guestEmail" validate:"required,email"`
	GuestName       string `json:"guestName"`
	GuestPhone      string `json:"guestPhone"`
	Duration        string `json:"duration"`
}

type EditReservationInput struct {
	ReservationTime string `json:"reservationTime" validate:"required"`
	Guests          int    `json:"guests" validate:"required,gt=0"`
	Duration        string `json:"duration"`
}

// ReservationSummary is the GET shape, with venue name and capacity
// denormalized onto the reservation.
type ReservationSummary struct {
	ID              uint      `json:"id"`
	PublicCode      string    `json:"publicCode"`
	VenueId         uint      `json:"venueId"`
	VenueName       string    `json:"venueName"`
	TotalSeats      int       `json:"totalSeats"`
	Guests          int       `json:"guests"`
	ReservationTime time.Time `json:"reservationTime"`
	Duration        string    `json:"duration"`
	GuestEmail      string    `json:"guestEmail"`
	GuestName       string    `json:"guestName"`
}
