package handler

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"venue_booking/constants"
	"venue_booking/database"
	"venue_booking/model"
	"venue_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
	"gorm.io/gorm"
)

func GetVenues(c *fiber.Ctx) error {
	filterInput := new(model.FilterVenue)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB

	limit := 20
	page := 1
	if filterInput.Limit != nil && *filterInput.Limit > 0 {
		limit = *filterInput.Limit
		if limit > 500 {
			limit = 500
		}
	}
	if filterInput.Page != nil && *filterInput.Page > 0 {
		page = *filterInput.Page
	}

	baseQuery := db.Model(&model.Venue{})
	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		baseQuery = baseQuery.Where(
			db.Where("LOWER(venues.name) LIKE ?", search).
				Or("LOWER(venues.description) LIKE ?", search).
				Or("LOWER(venues.contact) LIKE ?", search),
		)
	}

	var totalCount int64
	countQuery := baseQuery.Session(&gorm.Session{})
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var venues []model.Venue
	err := utils.ApplyPagination(baseQuery, &limit, &page).
		Order("venues.id DESC").
		Find(&venues).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       venues,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetVenueById(c *fiber.Ctx) error {
	db := database.DB
	venueId := uint(c.Locals("inputId").(int))

	var venue model.Venue
	if err := db.First(&venue, venueId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func RegisterVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputRegisterVenue").(model.RegisterVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	venue := model.Venue{
		Slug:         slug.Make(input.Name),
		Name:         input.Name,
		Description:  input.Description,
		Contact:      input.Contact,
		Email:        input.Email,
		WorkingHours: input.WorkingHours,
		TotalSeats:   input.TotalSeats,
		OwnerRef:     input.OwnerRef,
	}

	var existing model.Venue
	if err := db.Where("slug = ?", venue.Slug).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Venue name already exists", errors.New("name already exists"))
	}

	if err := db.Create(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CREATE_VENUE_FAIL, err)
	}

	go sendVenueRegisteredMail(venue)

	return utils.SuccessResponse(c, fiber.StatusCreated, venue)
}

// sendVenueRegisteredMail drops the venue contact a one-off plain-text
// note. Failure is logged only.
func sendVenueRegisteredMail(venue model.Venue) {
	host := os.Getenv("SMTP_HOST")
	addr := fmt.Sprintf("%s:%s", host, os.Getenv("SMTP_PORT"))

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{venue.Email}
	e.Subject = "Venue Registered"
	e.Text = []byte(fmt.Sprintf("Your venue %q is now open for reservations with %d seats.", venue.Name, venue.TotalSeats))
	if err := e.Send(addr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), host)); err != nil {
		log.Printf("failed to send venue registration mail: %v", err)
	}
}

// EditVenue updates registry data. TotalSeats edits are allowed here,
// the reservation engine treats whatever is stored as authoritative.
func EditVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditVenue").(model.EditVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	venueId := uint(c.Locals("inputId").(int))

	db := database.DB
	var venue model.Venue
	if err := db.First(&venue, venueId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&venue, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EDIT_VENUE_FAIL, err)
	}
	if input.Name != nil {
		venue.Slug = slug.Make(*input.Name)
	}

	if err := db.Save(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EDIT_VENUE_FAIL, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func DeleteVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	if err := tx.Where("venue_id IN ?", input.IDs).Delete(&model.Reservation{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.DELETE_VENUE_FAIL, err)
	}
	if err := tx.Delete(&model.Venue{}, input.IDs).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.DELETE_VENUE_FAIL, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.DELETE_VENUE_FAIL, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Venues deleted successfully",
	})
}
