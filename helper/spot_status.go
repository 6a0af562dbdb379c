package helper

import (
	"time"

	"lounge_booking/model"
)

// FindReservation returns the row for day+type+number, or nil.
func FindReservation(reservations []model.Reservation, day, spotType, number string) *model.Reservation {
	for i := range reservations {
		r := &reservations[i]
		if r.Day == day && r.Type == spotType && r.Number == number {
			return r
		}
	}
	return nil
}

// ResolveStatus maps a stored row to what customers see. An expired pending hold
// reads as available even though the row is still stored.
func ResolveStatus(res *model.Reservation, now time.Time) string {
	if res == nil {
		return model.StatusAvailable
	}
	if res.Status == model.StatusPending {
		if res.Expired(now.UnixMilli()) {
			return model.StatusAvailable
		}
		return model.StatusPending
	}
	return res.Status
}

func ResolveSpotStatus(reservations []model.Reservation, day, spotType, number string, now time.Time) string {
	return ResolveStatus(FindReservation(reservations, day, spotType, number), now)
}

// IsOccupied reports whether a resolved status blocks a new selection.
func IsOccupied(status string) bool {
	return status == model.StatusReserved || status == model.StatusPending || status == model.StatusBlocked
}

func StatusLabel(status string, price float64) string {
	switch status {
	case model.StatusBlocked:
		return "RESERVADO ADM"
	case model.StatusPending:
		return "EM PROCESSO"
	case model.StatusReserved:
		return "OCUPADO"
	}
	return FormatPrice(price)
}
