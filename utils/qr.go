package utils

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/skip2/go-qrcode"

	"lounge_booking/model"
)

const CheckInQRSize = 256

// GenerateQRCode encodes content as a PNG QR code.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var ErrNoCheckInToken = errors.New("reservation has no check-in token")

// CheckInPayload is what the door scanner reads: spot id plus the token stored on
// the reserved row, so a code cannot be derived from the spot alone.
func CheckInPayload(res model.Reservation) (string, error) {
	if res.HeldBy == "" {
		return "", ErrNoCheckInToken
	}
	return "BLACKNIGHT:" + res.Spot().String() + ":" + res.HeldBy, nil
}

func CheckInQR(res model.Reservation) ([]byte, error) {
	payload, err := CheckInPayload(res)
	if err != nil {
		return nil, err
	}
	return GenerateQRCode(payload, CheckInQRSize)
}
