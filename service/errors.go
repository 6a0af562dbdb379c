package service

import "errors"

var (
	ErrInvalidDay          = errors.New("invalid day")
	ErrInvalidSpot         = errors.New("invalid spot")
	ErrSpotUnavailable     = errors.New("spot is not available")
	ErrSpotReserved        = errors.New("spot is reserved")
	ErrNotFound            = errors.New("not found")
	ErrGuestFormIncomplete = errors.New("guest form incomplete")
	ErrInvalidAge          = errors.New("invalid age")
	ErrUnderage            = errors.New("guest is under age")
	ErrReceiptRequired     = errors.New("receipt required")
	ErrReceiptNotImage     = errors.New("receipt is not an image")
	ErrFlyerRequired       = errors.New("flyer required")
	ErrFlyerNotImage       = errors.New("flyer is not an image")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
