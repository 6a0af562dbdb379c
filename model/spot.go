package model

import (
	"errors"
	"strings"
)

var ErrMalformedSpotID = errors.New("malformed spot id")

// SpotID identifies a bookable unit; its string form "{day}|{type}|{number}" is the
// primary key of reservations and the key of the price configuration.
type SpotID struct {
	Day    string `json:"day"`
	Type   string `json:"type"`
	Number string `json:"number"`
}

func (s SpotID) String() string {
	return s.Day + "|" + s.Type + "|" + s.Number
}

func ParseSpotID(id string) (SpotID, error) {
	parts := strings.Split(id, "|")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return SpotID{}, ErrMalformedSpotID
	}
	return SpotID{Day: parts[0], Type: parts[1], Number: parts[2]}, nil
}
