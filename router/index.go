package router

import (
	"venue_booking/handler"
	"venue_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Backend is up and running!"})
	})

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	venue := v1.Group("/venue")
	venue.Get("/", handler.GetVenues)
	venue.Post("/", validate.RegisterVenue(), handler.RegisterVenue)
	venue.Get("/:venueId", validate.GetById("venueId"), handler.GetVenueById)
	venue.Put("/:venueId", validate.EditVenue("venueId"), handler.EditVenue)
	venue.Delete("/", validate.Delete(), handler.DeleteVenue)
	venue.Get("/:venueId/availability/ws", validate.GetById("venueId"), websocket.New(handler.AvailabilityWebsocket))

	reservation := v1.Group("/reservation")
	reservation.Get("/seats/:venueId", validate.GetById("venueId"), handler.GetAvailableSeats)
	reservation.Get("/:reservationId", validate.GetById("reservationId"), handler.GetReservationById)
	reservation.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservation.Put("/:reservationId", validate.EditReservation("reservationId"), handler.EditReservation)
	reservation.Delete("/:reservationId", validate.GetById("reservationId"), handler.CancelReservation)
}
