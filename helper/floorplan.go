package helper

import (
	"time"

	"lounge_booking/constants"
	"lounge_booking/model"
)

type SpotView struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Type      string  `json:"type"`
	TypeLabel string  `json:"typeLabel"`
	Number    string  `json:"number"`
	Status    string  `json:"status"`
	Label     string  `json:"label"`
	Price     float64 `json:"price"`
	Disabled  bool    `json:"disabled"`
	ExpiresAt *int64  `json:"expiresAt,omitempty"`
}

type FloorPlanSection struct {
	Name string       `json:"name"`
	Rows [][]SpotView `json:"rows"`
}

type FloorPlan struct {
	Day      string             `json:"day"`
	DayLabel string             `json:"dayLabel"`
	Sections []FloorPlanSection `json:"sections"`
}

func IsValidDay(day string) bool {
	_, ok := constants.DAY_LABELS[day]
	return ok
}

// IsValidSpot checks the spot against the venue layout.
func IsValidSpot(spot model.SpotID) bool {
	if !IsValidDay(spot.Day) {
		return false
	}
	for _, s := range LayoutSpots(spot.Day) {
		if s == spot {
			return true
		}
	}
	return false
}

// LayoutSpots lists every bookable spot of a day in floor-plan order.
func LayoutSpots(day string) []model.SpotID {
	var spots []model.SpotID
	for _, section := range layout() {
		for _, row := range section.rows {
			for _, cell := range row {
				spots = append(spots, model.SpotID{Day: day, Type: cell.spotType, Number: cell.number})
			}
		}
	}
	return spots
}

// BuildFloorPlan resolves every spot of the day against the reservation list.
func BuildFloorPlan(reservations []model.Reservation, day string, prices model.PriceConfig, now time.Time) FloorPlan {
	plan := FloorPlan{Day: day, DayLabel: constants.DAY_LABELS[day]}
	for _, section := range layout() {
		out := FloorPlanSection{Name: section.name}
		for _, row := range section.rows {
			views := make([]SpotView, 0, len(row))
			for _, cell := range row {
				views = append(views, buildSpotView(reservations, model.SpotID{Day: day, Type: cell.spotType, Number: cell.number}, prices, now))
			}
			out.Rows = append(out.Rows, views)
		}
		plan.Sections = append(plan.Sections, out)
	}
	return plan
}

func buildSpotView(reservations []model.Reservation, spot model.SpotID, prices model.PriceConfig, now time.Time) SpotView {
	res := FindReservation(reservations, spot.Day, spot.Type, spot.Number)
	status := ResolveStatus(res, now)
	price := EffectivePrice(prices, spot)

	view := SpotView{
		ID:        spot.String(),
		Day:       spot.Day,
		Type:      spot.Type,
		TypeLabel: constants.TYPE_LABELS[spot.Type],
		Number:    spot.Number,
		Status:    status,
		Label:     StatusLabel(status, price),
		Price:     price,
		Disabled:  IsOccupied(status),
	}
	if status == model.StatusPending && res != nil {
		view.ExpiresAt = res.ExpiresAt
	}
	return view
}

type layoutCell struct {
	spotType string
	number   string
}

type layoutSection struct {
	name string
	rows [][]layoutCell
}

func layout() []layoutSection {
	column := func(spotType string, numbers []string) [][]layoutCell {
		rows := make([][]layoutCell, 0, len(numbers))
		for _, n := range numbers {
			rows = append(rows, []layoutCell{{spotType: spotType, number: n}})
		}
		return rows
	}

	center := make([][]layoutCell, 0, len(constants.BISTRO_CENTER))
	for _, pair := range constants.BISTRO_CENTER {
		row := make([]layoutCell, 0, len(pair))
		for _, n := range pair {
			row = append(row, layoutCell{spotType: constants.TYPE_BISTRO, number: n})
		}
		center = append(center, row)
	}

	bottom := make([]layoutCell, 0, len(constants.BOOTHS_BOTTOM))
	for _, n := range constants.BOOTHS_BOTTOM {
		bottom = append(bottom, layoutCell{spotType: constants.TYPE_BOOTH, number: n})
	}

	return []layoutSection{
		{name: "top", rows: column(constants.TYPE_BOOTH, constants.BOOTHS_TOP)},
		{name: "left", rows: column(constants.TYPE_BOOTH, constants.BOOTHS_LEFT)},
		{name: "center", rows: center},
		{name: "right", rows: column(constants.TYPE_BOOTH, constants.BOOTHS_RIGHT)},
		{name: "bottom", rows: [][]layoutCell{bottom}},
	}
}
