package validate

import (
	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/model"
	"lounge_booking/utils"
)

// GuestForm parses JSON, urlencoded or multipart guest details into Locals("guestForm").
// Age limits are checked by the booking service.
func GuestForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GuestForm
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GUEST_FORM_INCOMPLETE, err)
		}

		c.Locals("guestForm", input)
		return c.Next()
	}
}

func Chat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChatRequest
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CHAT_MESSAGE_REQUIRED, err)
		}

		c.Locals("chatInput", input)
		return c.Next()
	}
}
