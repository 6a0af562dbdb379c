package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/datatypes"

	"lounge_booking/constants"
	"lounge_booking/helper"
	"lounge_booking/model"
	"lounge_booking/realtime"
	"lounge_booking/repository"
)

const (
	LockAdvisory = "advisory"
	LockAtomic   = "atomic"

	DefaultHoldDuration = 15 * time.Minute
)

// PriceSource supplies the committed price overrides.
type PriceSource interface {
	Prices(ctx context.Context) (model.PriceConfig, error)
}

// Notifier is told about every confirmed booking. Implementations must not block.
type Notifier interface {
	ReservationConfirmed(res model.Reservation)
}

type BookingOptions struct {
	HoldDuration time.Duration
	LockMode     string
	Now          func() time.Time
	Notifier     Notifier
}

type BookingService struct {
	repo     repository.ReservationRepository
	prices   PriceSource
	pub      realtime.Publisher
	notifier Notifier
	hold     time.Duration
	atomic   bool
	now      func() time.Time
}

func NewBookingService(repo repository.ReservationRepository, prices PriceSource, pub realtime.Publisher, opts BookingOptions) *BookingService {
	if pub == nil {
		pub = realtime.Discard{}
	}
	if opts.HoldDuration <= 0 {
		opts.HoldDuration = DefaultHoldDuration
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &BookingService{
		repo:     repo,
		prices:   prices,
		pub:      pub,
		notifier: opts.Notifier,
		hold:     opts.HoldDuration,
		atomic:   opts.LockMode == LockAtomic,
		now:      opts.Now,
	}
}

func (s *BookingService) FloorPlan(ctx context.Context, day string) (helper.FloorPlan, error) {
	if !helper.IsValidDay(day) {
		return helper.FloorPlan{}, ErrInvalidDay
	}
	rows, err := s.repo.List(ctx, day)
	if err != nil {
		return helper.FloorPlan{}, fmt.Errorf("list reservations: %w", err)
	}
	prices, err := s.prices.Prices(ctx)
	if err != nil {
		return helper.FloorPlan{}, err
	}
	return helper.BuildFloorPlan(rows, day, prices, s.now()), nil
}

func (s *BookingService) List(ctx context.Context, day string) ([]model.Reservation, error) {
	if day != "" && !helper.IsValidDay(day) {
		return nil, ErrInvalidDay
	}
	rows, err := s.repo.List(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return rows, nil
}

func (s *BookingService) Get(ctx context.Context, spot model.SpotID) (*model.Reservation, error) {
	if !helper.IsValidSpot(spot) {
		return nil, ErrInvalidSpot
	}
	row, err := s.repo.GetByID(ctx, spot.String())
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return row, nil
}

// SelectSpot places a pending hold on a free spot. In advisory mode the existence
// check and the write are separate statements, so two callers can both win and
// the later write stays.
func (s *BookingService) SelectSpot(ctx context.Context, spot model.SpotID) (*model.Reservation, error) {
	if !helper.IsValidSpot(spot) {
		return nil, ErrInvalidSpot
	}

	now := s.now()
	existing, err := s.repo.GetByID(ctx, spot.String())
	if err != nil {
		return nil, fmt.Errorf("check spot: %w", err)
	}
	if helper.IsOccupied(helper.ResolveStatus(existing, now)) {
		return nil, ErrSpotUnavailable
	}

	prices, err := s.prices.Prices(ctx)
	if err != nil {
		return nil, err
	}
	expires := now.Add(s.hold).UnixMilli()
	row := &model.Reservation{
		ID:        spot.String(),
		Day:       spot.Day,
		Type:      spot.Type,
		Number:    spot.Number,
		Status:    model.StatusPending,
		Price:     helper.EffectivePrice(prices, spot),
		ExpiresAt: &expires,
		HeldBy:    uuid.NewString(),
		Customer:  datatypes.NewJSONType[*model.Customer](nil),
	}

	eventType := realtime.EventInsert
	if existing != nil {
		eventType = realtime.EventUpdate
	}

	if s.atomic {
		inserted, err := s.repo.InsertIfAbsent(ctx, row)
		if err != nil {
			return nil, fmt.Errorf("hold spot: %w", err)
		}
		if !inserted {
			replaced, err := s.repo.ReplaceExpiredPending(ctx, row, now.UnixMilli())
			if err != nil {
				return nil, fmt.Errorf("hold spot: %w", err)
			}
			if !replaced {
				return nil, ErrSpotUnavailable
			}
			eventType = realtime.EventUpdate
		} else {
			eventType = realtime.EventInsert
		}
	} else if err := s.repo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("hold spot: %w", err)
	}

	s.publish(ctx, realtime.ReservationEvent(eventType, *row))
	return row, nil
}

// CheckGuestForm validates the guest details before payment. It never writes.
func (s *BookingService) CheckGuestForm(form model.GuestForm) error {
	if strings.TrimSpace(form.FullName) == "" || strings.TrimSpace(form.Phone) == "" || strings.TrimSpace(form.Age) == "" {
		return ErrGuestFormIncomplete
	}
	age, err := strconv.Atoi(strings.TrimSpace(form.Age))
	if err != nil || age < 0 {
		return ErrInvalidAge
	}
	if age < constants.MINIMUM_AGE {
		return ErrUnderage
	}
	return nil
}

// ConfirmReservation turns a held or free spot into a reservation with the
// customer payload. Reserved and blocked spots are refused; the hold token is
// not compared, so the last confirm on a pending spot wins.
func (s *BookingService) ConfirmReservation(ctx context.Context, spot model.SpotID, form model.GuestForm, receipt *model.Receipt) (*model.Reservation, error) {
	if !helper.IsValidSpot(spot) {
		return nil, ErrInvalidSpot
	}
	if err := s.CheckGuestForm(form); err != nil {
		return nil, err
	}
	if receipt == nil || len(receipt.Data) == 0 {
		return nil, ErrReceiptRequired
	}
	receiptURL, err := helper.EncodeImageDataURL(receipt.Data)
	if err != nil {
		if errors.Is(err, helper.ErrNotImage) || errors.Is(err, helper.ErrEmptyImage) {
			return nil, ErrReceiptNotImage
		}
		return nil, err
	}

	customer, err := BuildCustomer(form, s.now())
	if err != nil {
		return nil, err
	}
	customer.Receipt = receiptURL

	prices, err := s.prices.Prices(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, spot.String())
	if err != nil {
		return nil, fmt.Errorf("load spot: %w", err)
	}
	switch helper.ResolveStatus(existing, s.now()) {
	case model.StatusReserved, model.StatusBlocked:
		return nil, ErrSpotUnavailable
	}

	row := &model.Reservation{
		ID:       spot.String(),
		Day:      spot.Day,
		Type:     spot.Type,
		Number:   spot.Number,
		Status:   model.StatusReserved,
		Price:    helper.EffectivePrice(prices, spot),
		HeldBy:   uuid.NewString(),
		Customer: datatypes.NewJSONType(customer),
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	eventType := realtime.EventInsert
	if existing != nil {
		eventType = realtime.EventUpdate
	}
	s.publish(ctx, realtime.ReservationEvent(eventType, *row))

	if s.notifier != nil {
		s.notifier.ReservationConfirmed(*row)
	}
	return row, nil
}

// BuildCustomer turns the typed form into the stored customer record: name and
// guests upper-cased, blank guest lines dropped.
func BuildCustomer(form model.GuestForm, now time.Time) (*model.Customer, error) {
	customer := &model.Customer{}
	if err := copier.Copy(customer, &form); err != nil {
		return nil, fmt.Errorf("copy guest form: %w", err)
	}
	customer.FullName = strings.ToUpper(strings.TrimSpace(customer.FullName))
	customer.Age = strings.TrimSpace(customer.Age)
	customer.Guests = []string{}
	for _, line := range strings.Split(form.GuestList, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		customer.Guests = append(customer.Guests, strings.ToUpper(strings.TrimSpace(line)))
	}
	customer.Timestamp = now.UnixMilli()
	return customer, nil
}

// ToggleBlock flips an admin block. A reserved spot cannot be blocked and is
// left untouched. It returns the row now stored, or nil when the spot was freed.
func (s *BookingService) ToggleBlock(ctx context.Context, spot model.SpotID) (*model.Reservation, error) {
	if !helper.IsValidSpot(spot) {
		return nil, ErrInvalidSpot
	}

	existing, err := s.repo.GetByID(ctx, spot.String())
	if err != nil {
		return nil, fmt.Errorf("load spot: %w", err)
	}

	if existing == nil {
		prices, err := s.prices.Prices(ctx)
		if err != nil {
			return nil, err
		}
		row := &model.Reservation{
			ID:       spot.String(),
			Day:      spot.Day,
			Type:     spot.Type,
			Number:   spot.Number,
			Status:   model.StatusBlocked,
			Price:    helper.BlockPrice(prices, spot),
			Customer: datatypes.NewJSONType[*model.Customer](nil),
		}
		if err := s.repo.Upsert(ctx, row); err != nil {
			return nil, fmt.Errorf("block spot: %w", err)
		}
		s.publish(ctx, realtime.ReservationEvent(realtime.EventInsert, *row))
		return row, nil
	}

	switch existing.Status {
	case model.StatusReserved:
		return nil, ErrSpotReserved
	case model.StatusBlocked:
		if _, err := s.repo.Delete(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("unblock spot: %w", err)
		}
		s.publish(ctx, realtime.ReservationEvent(realtime.EventDelete, *existing))
		return nil, nil
	}

	row := *existing
	row.Status = model.StatusBlocked
	row.ExpiresAt = nil
	row.HeldBy = ""
	if err := s.repo.Upsert(ctx, &row); err != nil {
		return nil, fmt.Errorf("block spot: %w", err)
	}
	s.publish(ctx, realtime.ReservationEvent(realtime.EventUpdate, row))
	return &row, nil
}

// Release deletes the spot's row whatever its status.
func (s *BookingService) Release(ctx context.Context, spot model.SpotID) error {
	if !helper.IsValidSpot(spot) {
		return ErrInvalidSpot
	}
	existing, err := s.repo.GetByID(ctx, spot.String())
	if err != nil {
		return fmt.Errorf("load spot: %w", err)
	}
	if existing == nil {
		return ErrNotFound
	}
	if _, err := s.repo.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("release spot: %w", err)
	}
	s.publish(ctx, realtime.ReservationEvent(realtime.EventDelete, *existing))
	return nil
}

// Receipt decodes the stored receipt image of a spot.
func (s *BookingService) Receipt(ctx context.Context, spot model.SpotID) ([]byte, string, error) {
	row, err := s.Get(ctx, spot)
	if err != nil {
		return nil, "", err
	}
	customer := row.CustomerData()
	if customer == nil || customer.Receipt == "" {
		return nil, "", ErrNotFound
	}
	data, mime, err := helper.DecodeDataURL(customer.Receipt)
	if err != nil {
		return nil, "", fmt.Errorf("decode receipt: %w", err)
	}
	return data, mime, nil
}

// SweepExpired deletes lapsed pending holds and reports how many were removed.
func (s *BookingService) SweepExpired(ctx context.Context) (int, error) {
	removed, err := s.repo.DeleteExpiredPending(ctx, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("sweep pending: %w", err)
	}
	for _, row := range removed {
		s.publish(ctx, realtime.ReservationEvent(realtime.EventDelete, row))
	}
	return len(removed), nil
}

func (s *BookingService) publish(ctx context.Context, ev realtime.Event) {
	if err := s.pub.Publish(ctx, ev); err != nil {
		log.Printf("publish %s %s event: %v", ev.Table, ev.Type, err)
	}
}
