package helper

import (
	"fmt"
	"math"

	"lounge_booking/constants"
	"lounge_booking/model"
)

func DefaultPrice(spotType string) float64 {
	return constants.DEFAULT_PRICES[spotType]
}

// EffectivePrice is the admin override for the spot when set, else the type default.
func EffectivePrice(prices model.PriceConfig, spot model.SpotID) float64 {
	if p, ok := prices[spot.String()]; ok && p > 0 {
		return p
	}
	return DefaultPrice(spot.Type)
}

// BlockPrice is what an admin block records: the override, or zero.
func BlockPrice(prices model.PriceConfig, spot model.SpotID) float64 {
	if p, ok := prices[spot.String()]; ok {
		return p
	}
	return 0
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("R$ %d", int64(math.Round(price)))
}
