package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// Config returns the value of an environment key, loading .env the first time.
func Config(key string) string {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

type Settings struct {
	Port         string
	BodyLimitMB  int
	CorsOrigins  string
	VenueTZ      *time.Location
	HoldDuration time.Duration
	LockMode     string
	SweepEvery   time.Duration

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string

	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string

	GeminiAPIKey string
	GeminiModel  string

	CloudinaryCloud  string
	CloudinaryKey    string
	CloudinarySecret string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	NotifyEmail  string

	ChatRatePerMinute  int
	LoginRatePerMinute int
}

func Load() Settings {
	apiKey := Config("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = Config("API_KEY")
	}

	return Settings{
		Port:         readString("PORT", "8002"),
		BodyLimitMB:  readInt("BODY_LIMIT_MB", 20),
		CorsOrigins:  readString("CORS_ORIGINS", "http://localhost:5173"),
		VenueTZ:      readLocation("VENUE_TIMEZONE", "America/Sao_Paulo"),
		HoldDuration: time.Duration(readInt("HOLD_MINUTES", 15)) * time.Minute,
		LockMode:     strings.ToLower(readString("SPOT_LOCK_MODE", "advisory")),
		SweepEvery:   time.Duration(readInt("PENDING_SWEEP_INTERVAL", 0)) * time.Second,

		DBHost:     Config("DB_HOST"),
		DBPort:     readInt("DB_PORT", 5432),
		DBUser:     Config("DB_USER"),
		DBPassword: Config("DB_PASSWORD"),
		DBName:     Config("DB_NAME"),
		DBSSLMode:  readString("DB_SSLMODE", "disable"),

		RedisAddr:     Config("REDIS_ADDR"),
		RedisPassword: Config("REDIS_PASSWORD"),

		JWTSecret:         Config("JWT_SECRET"),
		AdminUser:         readString("ADMIN_USER", "BLACK"),
		AdminPasswordHash: Config("ADMIN_PASSWORD_HASH"),

		GeminiAPIKey: apiKey,
		GeminiModel:  readString("GEMINI_MODEL", "gemini-3-flash-preview"),

		CloudinaryCloud:  Config("CLOUDINARY_CLOUD_NAME"),
		CloudinaryKey:    Config("CLOUDINARY_API_KEY"),
		CloudinarySecret: Config("CLOUDINARY_API_SECRET"),

		SMTPHost:     Config("SMTP_HOST"),
		SMTPPort:     readInt("SMTP_PORT", 587),
		SMTPUsername: Config("SMTP_USERNAME"),
		SMTPPassword: Config("SMTP_PASSWORD"),
		SMTPFrom:     Config("SMTP_FROM"),
		NotifyEmail:  Config("NOTIFY_EMAIL"),

		ChatRatePerMinute:  readInt("CHAT_RATE_PER_MIN", 20),
		LoginRatePerMinute: readInt("LOGIN_RATE_PER_MIN", 10),
	}
}

func (s Settings) HasDatabase() bool {
	return s.DBHost != ""
}

func (s Settings) HasCloudinary() bool {
	return s.CloudinaryCloud != "" && s.CloudinaryKey != "" && s.CloudinarySecret != ""
}

func (s Settings) HasMail() bool {
	return s.SMTPHost != "" && s.NotifyEmail != ""
}

func readString(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func readInt(key string, fallback int) int {
	raw := Config(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func readLocation(key, fallback string) *time.Location {
	name := readString(key, fallback)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown time zone %q, using UTC-3", name)
		return time.FixedZone("BRT", -3*3600)
	}
	return loc
}
