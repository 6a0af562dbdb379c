package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"lounge_booking/concierge"
	"lounge_booking/constants"
	"lounge_booking/realtime"
	"lounge_booking/service"
	"lounge_booking/utils"
)

type Deps struct {
	Booking   *service.BookingService
	Config    *service.ConfigService
	Auth      *service.AuthService
	Concierge *concierge.Concierge
	Mirror    *realtime.Mirror
	Hub       *realtime.Hub
	// SecureCookies marks the session cookie Secure; off for plain-HTTP local runs.
	SecureCookies bool
}

var (
	bookingService *service.BookingService
	configService  *service.ConfigService
	authService    *service.AuthService
	chatConcierge  *concierge.Concierge
	mirror         *realtime.Mirror
	hub            *realtime.Hub
	secureCookies  bool
)

// Init wires the services used by the package-level handlers.
func Init(d Deps) {
	bookingService = d.Booking
	configService = d.Config
	authService = d.Auth
	chatConcierge = d.Concierge
	mirror = d.Mirror
	hub = d.Hub
	secureCookies = d.SecureCookies
}

// serviceError maps service sentinels to status codes and user-facing messages.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSpotUnavailable):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SPOT_UNAVAILABLE, err)
	case errors.Is(err, service.ErrSpotReserved):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.SPOT_RESERVED_NO_BLOCK, err)
	case errors.Is(err, service.ErrUnderage):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.UNDERAGE, err, "age")
	case errors.Is(err, service.ErrInvalidAge):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_AGE, err, "age")
	case errors.Is(err, service.ErrGuestFormIncomplete):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GUEST_FORM_INCOMPLETE, err)
	case errors.Is(err, service.ErrReceiptRequired):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.RECEIPT_REQUIRED, err, "receipt")
	case errors.Is(err, service.ErrReceiptNotImage):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.RECEIPT_NOT_IMAGE, err, "receipt")
	case errors.Is(err, service.ErrFlyerRequired):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.FLYER_REQUIRED, err, "flyer")
	case errors.Is(err, service.ErrFlyerNotImage):
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.FLYER_NOT_IMAGE, err, "flyer")
	case errors.Is(err, service.ErrInvalidPrice):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PRICE, err)
	case errors.Is(err, service.ErrInvalidSpot):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_SPOT, err)
	case errors.Is(err, service.ErrInvalidDay):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DAY, err)
	case errors.Is(err, service.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SPOT_NOT_FOUND, err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
	}
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
