package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/model"
	"lounge_booking/utils"
)

// SelectSpot puts the 15-minute pending hold on a spot.
func SelectSpot(c *fiber.Ctx) error {
	spot := c.Locals("spot").(model.SpotID)

	row, err := bookingService.SelectSpot(c.Context(), spot)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":         row.ID,
		"status":     row.Status,
		"price":      row.Price,
		"expires_at": row.ExpiresAt,
		"heldBy":     row.HeldBy,
	})
}

// CheckGuest validates the guest form before the payment step. Nothing is written.
func CheckGuest(c *fiber.Ctx) error {
	form := c.Locals("guestForm").(model.GuestForm)
	if err := bookingService.CheckGuestForm(form); err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"id":     c.Locals("spot").(model.SpotID).String(),
		"pixKey": constants.PIX_KEY,
	})
}

// ConfirmReservation takes the multipart guest form plus the "receipt" image.
func ConfirmReservation(c *fiber.Ctx) error {
	spot := c.Locals("spot").(model.SpotID)
	form := c.Locals("guestForm").(model.GuestForm)

	receipt, err := readUpload(c, "receipt")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	row, err := bookingService.ConfirmReservation(c.Context(), spot, form, receipt)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, row.Public())
}

// readUpload returns nil when the field is absent so the service can report it.
func readUpload(c *fiber.Ctx, field string) (*model.Receipt, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &model.Receipt{Data: data}, nil
}
