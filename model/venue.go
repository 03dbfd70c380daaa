package model

type Venue struct {
	DTO
	Slug         string `gorm:"uniqueIndex" json:"slug"`
	Name         string `gorm:"not null" validate:"required" json:"name"`
	Description  string `json:"description"`
	Contact      string `json:"contact"`
	Email        string `json:"email"`
	WorkingHours string `json:"workingHours"`
	TotalSeats   int    `gorm:"not null" validate:"required,gt=0" json:"totalSeats"`
	// BookedSeats is display data only. It is set on modify and
	// decremented on cancel, never read for capacity decisions:
	// availability is always recomputed from live overlap queries.
	BookedSeats  int           `gorm:"not null;default:0" json:"bookedSeats"`
	OwnerRef     string        `json:"ownerRef"`
	Reservations []Reservation `gorm:"foreignKey:VenueId" json:"-"`
}

type Venues []Venue

type RegisterVenueInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Contact      string `json:"contact" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	WorkingHours string `json:"workingHours"`
	TotalSeats   int    `json:"totalSeats" validate:"required,gt=0"`
	OwnerRef     string `json:"ownerRef"`
}

type EditVenueInput struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Contact      *string `json:"contact"`
	Email        *string `json:"email" validate:"omitempty,email"`
	WorkingHours *string `json:"workingHours"`
	TotalSeats   *int    `json:"totalSeats" validate:"omitempty,gt=0"`
}

type FilterVenue struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
