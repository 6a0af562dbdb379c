package helper

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gosimple/slug"
)

// FlyerUploader hosts flyer artwork and returns the public URL.
type FlyerUploader interface {
	UploadFlyer(ctx context.Context, day string, data []byte) (string, error)
	DeleteFlyer(ctx context.Context, url string) error
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func InitCloudinary(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: "lounge/flyers"}, nil
}

func (u *CloudinaryUploader) UploadFlyer(ctx context.Context, day string, data []byte) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       u.folder,
		PublicID:     FlyerPublicID(day, time.Now()),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload flyer to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("upload flyer to cloudinary: %s", result.Error.Message)
	}
	return result.SecureURL, nil
}

// DeleteFlyer removes a previously hosted flyer. URLs from other hosts are ignored.
func (u *CloudinaryUploader) DeleteFlyer(ctx context.Context, url string) error {
	publicID := ExtractPublicID(url)
	if publicID == "" {
		return nil
	}
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("destroy flyer %s: %w", publicID, err)
	}
	return nil
}

// ExtractPublicID reads "<folder>/<public-id>" out of a delivery URL such as
// https://res.cloudinary.com/<cloud>/image/upload/v17/<folder>/<public-id>.png.
func ExtractPublicID(url string) string {
	_, path, ok := strings.Cut(url, "/upload/")
	if !ok || !strings.HasPrefix(url, "https://res.cloudinary.com/") {
		return ""
	}
	parts := strings.Split(path, "/")
	if len(parts) > 1 && len(parts[0]) > 1 && parts[0][0] == 'v' && isDigits(parts[0][1:]) {
		parts = parts[1:]
	}
	publicID := strings.Join(parts, "/")
	return strings.TrimSuffix(publicID, filepath.Ext(publicID))
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// FlyerPublicID builds a readable, unique asset id such as "flyer-sabado-1718000000".
func FlyerPublicID(dayLabel string, at time.Time) string {
	return fmt.Sprintf("flyer-%s-%d", slug.Make(dayLabel), at.Unix())
}
