package validate

import (
	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/model"
	"lounge_booking/utils"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
		}

		c.Locals("loginInput", input)
		return c.Next()
	}
}

func Prices() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PricesInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRICE, err)
		}

		c.Locals("pricesInput", input)
		return c.Next()
	}
}
