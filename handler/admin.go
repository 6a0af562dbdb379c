package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/model"
	"lounge_booking/service"
	"lounge_booking/utils"
)

// ListReservations returns full rows, customer data included, optionally for one day.
func ListReservations(c *fiber.Ctx) error {
	rows, err := bookingService.List(c.Context(), c.Locals("day").(string))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// ToggleBlock blocks a free or pending spot, or frees a blocked one.
func ToggleBlock(c *fiber.Ctx) error {
	spot := c.Locals("spot").(model.SpotID)

	row, err := bookingService.ToggleBlock(c.Context(), spot)
	if err != nil {
		return serviceError(c, err)
	}
	if row == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": spot.String(), "status": model.StatusAvailable})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, row)
}

func ReleaseSpot(c *fiber.Ctx) error {
	spot := c.Locals("spot").(model.SpotID)
	if err := bookingService.Release(c.Context(), spot); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, constants.RESERVATION_RELEASED)
}

func GetReceipt(c *fiber.Ctx) error {
	spot := c.Locals("spot").(model.SpotID)

	data, mime, err := bookingService.Receipt(c.Context(), spot)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_RECEIPT, err)
		}
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentType, mime)
	return c.Send(data)
}

func SavePrices(c *fiber.Ctx) error {
	input := c.Locals("pricesInput").(model.PricesInput)

	prices, err := configService.SavePrices(c.Context(), input.Prices)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.PRICES_SAVED,
		"prices":  prices,
	})
}

// SaveFlyer reads the multipart "flyer" image for the day.
func SaveFlyer(c *fiber.Ctx) error {
	day := c.Locals("day").(string)

	upload, err := readUpload(c, "flyer")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}
	var data []byte
	if upload != nil {
		data = upload.Data
	}

	ref, err := configService.SaveFlyer(c.Context(), day, data)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": constants.FLYER_SAVED,
		"day":     day,
		"flyer":   ref,
	})
}

func RemoveFlyer(c *fiber.Ctx) error {
	day := c.Locals("day").(string)
	if err := configService.RemoveFlyer(c.Context(), day); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FLYER_NOT_FOUND, err)
		}
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetUpdateLogs(c *fiber.Ctx) error {
	logs, err := configService.UpdateLogs(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, logs)
}

// GetCheckInQR returns the door QR code of a confirmed reservation.
func GetCheckInQR(c *fiber.Ctx) error {
	spot := c.Locals("spot").(model.SpotID)

	row, err := bookingService.Get(c.Context(), spot)
	if err != nil {
		return serviceError(c, err)
	}
	if row.Status != model.StatusReserved || row.HeldBy == "" {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SPOT_NOT_RESERVED, nil)
	}

	png, err := utils.CheckInQR(*row)
	if err != nil {
		return serviceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
