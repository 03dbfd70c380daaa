package database

import (
	"log"
	"venue_booking/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	venues := []model.Venue{
		{
			Name:         "The Golden Fork",
			Description:  "Modern bistro in the old town",
			Contact:      "+84 28 3820 1234",
			Email:        "hello@goldenfork.example",
			WorkingHours: "10:00-22:00",
			TotalSeats:   40,
			OwnerRef:     "seed",
		},
		{
			Name:         "Saigon Garden",
			Description:  "Courtyard dining, family style",
			Contact:      "+84 28 3820 5678",
			Email:        "contact@saigongarden.example",
			WorkingHours: "09:00-23:00",
			TotalSeats:   80,
			OwnerRef:     "seed",
		},
	}

	for _, venue := range venues {
		venue.Slug = slug.Make(venue.Name)
		if err := db.Where(model.Venue{Slug: venue.Slug}).FirstOrCreate(&venue).Error; err != nil {
			log.Println("failed to seed data for venue:", venue.Name, "error:", err)
		}
	}
}
