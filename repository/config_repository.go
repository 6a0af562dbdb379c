package repository

import (
	"context"
	"errors"

	"lounge_booking/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	// Blob by key; nil when it was never saved.
	Get(ctx context.Context, key string) (*model.AppConfig, error)
	List(ctx context.Context) ([]model.AppConfig, error)
	// Overwrite the whole blob; true when the key did not exist before.
	Put(ctx context.Context, cfg *model.AppConfig) (bool, error)
}

type GormConfigRepository struct {
	db *gorm.DB
}

func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

func (r *GormConfigRepository) Get(ctx context.Context, key string) (*model.AppConfig, error) {
	var row model.AppConfig
	if err := r.db.WithContext(ctx).Where(&model.AppConfig{Key: key}).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *GormConfigRepository) List(ctx context.Context) ([]model.AppConfig, error) {
	var rows []model.AppConfig
	if err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormConfigRepository) Put(ctx context.Context, cfg *model.AppConfig) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.AppConfig{}).Where(&model.AppConfig{Key: cfg.Key}).Count(&count).Error; err != nil {
		return false, err
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(cfg).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
