package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/helper"
	"lounge_booking/model"
	"lounge_booking/utils"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("venue_day", func(fl validator.FieldLevel) bool {
		return helper.IsValidDay(fl.Field().String())
	})
	_ = v.RegisterValidation("spot_type", func(fl validator.FieldLevel) bool {
		_, ok := constants.TYPE_LABELS[fl.Field().String()]
		return ok
	})
	return v
}

type spotParams struct {
	Day    string `validate:"required,venue_day"`
	Type   string `validate:"required,spot_type"`
	Number string `validate:"required,numeric"`
}

// SpotParams reads :day/:type/:number and stores the spot in Locals("spot").
func SpotParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := spotParams{Day: c.Params("day"), Type: c.Params("type"), Number: c.Params("number")}
		if err := validate.Struct(params); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SPOT, err)
		}

		spot := model.SpotID{Day: params.Day, Type: params.Type, Number: params.Number}
		if !helper.IsValidSpot(spot) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SPOT, errors.New("spot not in floor plan"))
		}

		c.Locals("spot", spot)
		return c.Next()
	}
}

// Day validates a day path parameter, or an optional ?day= query when key is empty.
func Day(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := c.Query("day")
		if key != "" {
			day = c.Params(key)
		} else if day == "" {
			c.Locals("day", "")
			return c.Next()
		}

		if err := validate.Var(day, "venue_day"); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DAY, err)
		}
		c.Locals("day", day)
		return c.Next()
	}
}
