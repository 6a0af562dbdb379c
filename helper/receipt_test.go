package helper

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"strings"
	"testing"
	"time"
)

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4)), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestEncodeAndDecodeImageDataURL(t *testing.T) {
	data := jpegBytes(t)

	url, err := EncodeImageDataURL(data)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/jpeg;base64,") {
		t.Fatalf("unexpected prefix %q", url[:24])
	}

	decoded, mime, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mime != "image/jpeg" || !bytes.Equal(decoded, data) {
		t.Fatalf("round trip mismatch: mime %q", mime)
	}
}

func TestDetectImageRejects(t *testing.T) {
	if _, err := DetectImage(nil); !errors.Is(err, ErrEmptyImage) {
		t.Fatalf("expected ErrEmptyImage, got %v", err)
	}
	if _, err := DetectImage([]byte("just some text")); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestDecodeDataURLRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "https://cdn/x.png", "data:image/png,plain", "data:image/png;base64,@@@"} {
		if _, _, err := DecodeDataURL(in); !errors.Is(err, ErrInvalidDataURL) {
			t.Fatalf("DecodeDataURL(%q) = %v", in, err)
		}
	}
}

func TestFlyerPublicID(t *testing.T) {
	at := time.Unix(1718000000, 0)
	if got := FlyerPublicID("Sábado", at); got != "flyer-sabado-1718000000" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractPublicID(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://res.cloudinary.com/demo/image/upload/v1718000000/lounge/flyers/flyer-sexta-1718000000.png", "lounge/flyers/flyer-sexta-1718000000"},
		{"https://res.cloudinary.com/demo/image/upload/lounge/flyers/a.jpg", "lounge/flyers/a"},
		{"https://cdn.example.com/upload/a.png", ""},
		{"data:image/png;base64,AAAA", ""},
	}
	for _, tc := range cases {
		if got := ExtractPublicID(tc.in); got != tc.want {
			t.Fatalf("ExtractPublicID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatStamp(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	at := time.Date(2026, 3, 7, 2, 5, 9, 0, time.UTC)
	if got := FormatStamp(at, loc); got != "06/03/2026 23:05:09" {
		t.Fatalf("got %q", got)
	}
}
