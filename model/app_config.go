package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ConfigPrices     = "prices"
	ConfigFlyers     = "flyers"
	ConfigUpdateLogs = "update_logs"
)

// AppConfig holds one whole category of admin settings as a single JSON blob.
type AppConfig struct {
	Key       string         `gorm:"primaryKey" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (AppConfig) TableName() string {
	return "app_config"
}

// PriceConfig maps a spot id to its price override.
type PriceConfig map[string]float64

// FlyerConfig maps a day to its promotional image (data URL or hosted URL).
type FlyerConfig map[string]string

// UpdateLog maps a config category to a human-readable last-modified stamp.
type UpdateLog map[string]string
