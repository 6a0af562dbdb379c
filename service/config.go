package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"lounge_booking/constants"
	"lounge_booking/helper"
	"lounge_booking/model"
	"lounge_booking/realtime"
	"lounge_booking/repository"
)

type ConfigOptions struct {
	Location *time.Location
	Now      func() time.Time
	// Uploader hosts flyers; nil keeps them inline as data URLs.
	Uploader helper.FlyerUploader
}

// ConfigService owns the admin-edited blobs: prices, flyers and their update stamps.
// Each save overwrites the whole blob.
type ConfigService struct {
	repo     repository.ConfigRepository
	pub      realtime.Publisher
	uploader helper.FlyerUploader
	loc      *time.Location
	now      func() time.Time
}

func NewConfigService(repo repository.ConfigRepository, pub realtime.Publisher, opts ConfigOptions) *ConfigService {
	if pub == nil {
		pub = realtime.Discard{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &ConfigService{repo: repo, pub: pub, uploader: opts.Uploader, loc: opts.Location, now: opts.Now}
}

func (s *ConfigService) Prices(ctx context.Context) (model.PriceConfig, error) {
	prices := model.PriceConfig{}
	if err := s.load(ctx, model.ConfigPrices, &prices); err != nil {
		return nil, err
	}
	return prices, nil
}

func (s *ConfigService) Flyers(ctx context.Context) (model.FlyerConfig, error) {
	flyers := model.FlyerConfig{}
	if err := s.load(ctx, model.ConfigFlyers, &flyers); err != nil {
		return nil, err
	}
	return flyers, nil
}

func (s *ConfigService) UpdateLogs(ctx context.Context) (model.UpdateLog, error) {
	logs := model.UpdateLog{}
	if err := s.load(ctx, model.ConfigUpdateLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// SavePrices replaces the committed price blob. Keys must name real spots.
func (s *ConfigService) SavePrices(ctx context.Context, prices model.PriceConfig) (model.PriceConfig, error) {
	if prices == nil {
		prices = model.PriceConfig{}
	}
	for id, price := range prices {
		spot, err := model.ParseSpotID(id)
		if err != nil || !helper.IsValidSpot(spot) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSpot, id)
		}
		if price < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, id)
		}
	}

	if err := s.save(ctx, model.ConfigPrices, prices); err != nil {
		return nil, err
	}
	s.stamp(ctx, model.ConfigPrices)
	return prices, nil
}

// SaveFlyer stores the day's artwork, hosted when an uploader is configured.
func (s *ConfigService) SaveFlyer(ctx context.Context, day string, data []byte) (string, error) {
	if !helper.IsValidDay(day) {
		return "", ErrInvalidDay
	}
	if len(data) == 0 {
		return "", ErrFlyerRequired
	}

	ref, err := helper.EncodeImageDataURL(data)
	if err != nil {
		if errors.Is(err, helper.ErrNotImage) || errors.Is(err, helper.ErrEmptyImage) {
			return "", ErrFlyerNotImage
		}
		return "", err
	}
	if s.uploader != nil {
		ref, err = s.uploader.UploadFlyer(ctx, constants.DAY_LABELS[day], data)
		if err != nil {
			return "", err
		}
	}

	flyers, err := s.Flyers(ctx)
	if err != nil {
		return "", err
	}
	previous := flyers[day]
	flyers[day] = ref
	if err := s.save(ctx, model.ConfigFlyers, flyers); err != nil {
		return "", err
	}
	s.stamp(ctx, model.ConfigFlyers)
	s.dropHosted(ctx, previous)
	return ref, nil
}

func (s *ConfigService) RemoveFlyer(ctx context.Context, day string) error {
	if !helper.IsValidDay(day) {
		return ErrInvalidDay
	}
	flyers, err := s.Flyers(ctx)
	if err != nil {
		return err
	}
	previous, ok := flyers[day]
	if !ok {
		return ErrNotFound
	}
	delete(flyers, day)
	if err := s.save(ctx, model.ConfigFlyers, flyers); err != nil {
		return err
	}
	s.stamp(ctx, model.ConfigFlyers)
	s.dropHosted(ctx, previous)
	return nil
}

// dropHosted deletes a replaced flyer from the image host. Inline images need nothing.
func (s *ConfigService) dropHosted(ctx context.Context, ref string) {
	if s.uploader == nil || ref == "" || strings.HasPrefix(ref, "data:") {
		return
	}
	if err := s.uploader.DeleteFlyer(ctx, ref); err != nil {
		log.Printf("delete old flyer: %v", err)
	}
}

// Stamps are best effort: a failed stamp does not undo the save.
func (s *ConfigService) stamp(ctx context.Context, category string) {
	logs, err := s.UpdateLogs(ctx)
	if err != nil {
		log.Printf("read update logs: %v", err)
		return
	}
	logs[category] = helper.FormatStamp(s.now(), s.loc)
	if err := s.save(ctx, model.ConfigUpdateLogs, logs); err != nil {
		log.Printf("stamp %s update: %v", category, err)
	}
}

func (s *ConfigService) load(ctx context.Context, key string, into any) error {
	row, err := s.repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if row == nil || len(row.Value) == 0 || string(row.Value) == "null" {
		return nil
	}
	if err := json.Unmarshal(row.Value, into); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *ConfigService) save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	row := &model.AppConfig{Key: key, Value: datatypes.JSON(raw), UpdatedAt: s.now().UTC()}
	created, err := s.repo.Put(ctx, row)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	eventType := realtime.EventUpdate
	if created {
		eventType = realtime.EventInsert
	}
	if err := s.pub.Publish(ctx, realtime.ConfigEvent(eventType, *row)); err != nil {
		log.Printf("publish %s event: %v", key, err)
	}
	return nil
}
