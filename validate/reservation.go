package validate

import (
	"fmt"
	"strconv"
	"venue_booking/constants"
	"venue_booking/model"
	"venue_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation rejects missing required fields and unparsable
// times before the handler ever touches the store. The duration label
// is NOT validated: unknown labels resolve to the default later.
func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		start, err := utils.ParseTime(input.ReservationTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RESERVATION_TIME, err)
		}

		c.Locals("inputCreateReservation", input)
		c.Locals("reservationStart", start)
		return c.Next()
	}
}

func EditReservation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		reservationId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditReservationInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		start, err := utils.ParseTime(input.ReservationTime)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_RESERVATION_TIME, err)
		}

		c.Locals("inputId", reservationId)
		c.Locals("inputEditReservation", input)
		c.Locals("reservationStart", start)
		return c.Next()
	}
}
