package validate

import (
	"fmt"
	"strconv"
	"venue_booking/constants"
	"venue_booking/model"
	"venue_booking/utils"

	"github.com/gofiber/fiber/v2"
)

func RegisterVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterVenueInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_REQUIRED_FIELDS, err)
		}

		c.Locals("inputRegisterVenue", input)
		return c.Next()
	}
}

func EditVenue(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		venueId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditVenueInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputId", venueId)
		c.Locals("inputEditVenue", input)
		return c.Next()
	}
}
