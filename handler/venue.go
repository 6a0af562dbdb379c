package handler

import (
	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/utils"
)

type dayInfo struct {
	ID     string                `json:"id"`
	Label  string                `json:"label"`
	Policy constants.HousePolicy `json:"policy"`
}

// GetVenue serves the static venue information shown around the floor plan.
func GetVenue(c *fiber.Ctx) error {
	days := make([]dayInfo, 0, len(constants.DAYS))
	for _, d := range constants.DAYS {
		days = append(days, dayInfo{ID: d, Label: constants.DAY_LABELS[d], Policy: constants.HOUSE_POLICIES[d]})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"days":            days,
		"types":           constants.TYPE_LABELS,
		"defaultPrices":   constants.DEFAULT_PRICES,
		"prohibitedItems": constants.PROHIBITED_ITEMS,
		"minimumAge":      constants.MINIMUM_AGE,
		"pixKey":          constants.PIX_KEY,
	})
}

func GetConfig(c *fiber.Ctx) error {
	prices, err := configService.Prices(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	flyers, err := configService.Flyers(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"prices": prices,
		"flyers": flyers,
	})
}

func GetFloorPlan(c *fiber.Ctx) error {
	day := c.Locals("day").(string)
	plan, err := bookingService.FloorPlan(c.Context(), day)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, plan)
}
