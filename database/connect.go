package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"lounge_booking/config"
	"lounge_booking/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDB opens Postgres when DB_HOST is set. Without store credentials the
// service still runs on a throwaway in-memory database.
func ConnectDB(cfg config.Settings) {
	var err error
	if !cfg.HasDatabase() {
		log.Println("DB_HOST not set, running on a non-persistent in-memory store")
		DB, err = OpenInMemory()
		if err != nil {
			panic("failed to open in-memory database")
		}
		return
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	DB, err = gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		panic("failed to connect database")
	}
	log.Println("Connection Opened to Database")

	if err := Migrate(DB); err != nil {
		panic("failed to migrate database")
	}
	log.Println("Database Migrated")
}

// OpenInMemory returns a migrated SQLite database living in a single connection.
func OpenInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Reservation{}, &model.AppConfig{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
