package repository

import (
	"context"
	"errors"
	"time"

	"lounge_booking/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository interface {
	// All rows for a day, or every row when day is empty.
	List(ctx context.Context, day string) ([]model.Reservation, error)
	// Row by composite id; nil when the spot has no row.
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	// Insert or overwrite the whole row, last write wins.
	Upsert(ctx context.Context, res *model.Reservation) error
	// Remove the row; false when nothing was there.
	Delete(ctx context.Context, id string) (bool, error)
	// Insert only when no row exists for the id.
	InsertIfAbsent(ctx context.Context, res *model.Reservation) (bool, error)
	// Overwrite the row only while it is a pending hold that expired before nowMillis.
	ReplaceExpiredPending(ctx context.Context, res *model.Reservation, nowMillis int64) (bool, error)
	// Delete pending rows expired before nowMillis and return them.
	DeleteExpiredPending(ctx context.Context, nowMillis int64) ([]model.Reservation, error)
}

type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) List(ctx context.Context, day string) ([]model.Reservation, error) {
	var rows []model.Reservation
	q := r.db.WithContext(ctx).Model(&model.Reservation{})
	if day != "" {
		q = q.Where("day = ?", day)
	}
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormReservationRepository) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	var row model.Reservation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *GormReservationRepository) Upsert(ctx context.Context, res *model.Reservation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(overwriteColumns),
		}).
		Create(res).Error
}

func (r *GormReservationRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Reservation{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormReservationRepository) InsertIfAbsent(ctx context.Context, res *model.Reservation) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(res)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *GormReservationRepository) ReplaceExpiredPending(ctx context.Context, res *model.Reservation, nowMillis int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id = ? AND status = ? AND expires_at IS NOT NULL AND expires_at < ?", res.ID, model.StatusPending, nowMillis).
		Updates(map[string]any{
			"day":        res.Day,
			"type":       res.Type,
			"number":     res.Number,
			"status":     res.Status,
			"price":      res.Price,
			"expires_at": res.ExpiresAt,
			"held_by":    res.HeldBy,
			"customer":   res.Customer,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// DeleteExpiredPending removes lapsed holds and returns the rows it actually
// deleted. Each delete repeats the expiry condition, so a hold refreshed after
// the scan survives even where the row lock is not honoured.
func (r *GormReservationRepository) DeleteExpiredPending(ctx context.Context, nowMillis int64) ([]model.Reservation, error) {
	var removed []model.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var expired []model.Reservation
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(expiredPendingCondition, model.StatusPending, nowMillis).
			Find(&expired).Error; err != nil {
			return err
		}

		for _, row := range expired {
			result := tx.
				Where("id = ?", row.ID).
				Where(expiredPendingCondition, model.StatusPending, nowMillis).
				Delete(&model.Reservation{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 1 {
				removed = append(removed, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

const expiredPendingCondition = "status = ? AND expires_at IS NOT NULL AND expires_at < ?"

var overwriteColumns = []string{
	"day", "type", "number", "status", "price", "expires_at", "held_by", "customer", "updated_at",
}
