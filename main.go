package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"lounge_booking/concierge"
	"lounge_booking/config"
	"lounge_booking/database"
	"lounge_booking/handler"
	"lounge_booking/helper"
	"lounge_booking/middleware"
	"lounge_booking/realtime"
	"lounge_booking/repository"
	"lounge_booking/router"
	"lounge_booking/service"
	"lounge_booking/utils"
)

func main() {
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database.ConnectDB(cfg)

	var broker realtime.Broker = realtime.NewMemoryBroker()
	if rdb := database.ConnectRedis(cfg); rdb != nil {
		broker = realtime.NewRedisBroker(rdb)
	}
	defer broker.Close()

	var uploader helper.FlyerUploader
	if cfg.HasCloudinary() {
		cld, err := helper.InitCloudinary(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
		if err != nil {
			log.Printf("Cloudinary disabled: %v", err)
		} else {
			uploader = cld
		}
	} else {
		log.Println("Cloudinary not configured, flyers are stored inline")
	}

	var notifier service.Notifier
	if cfg.HasMail() {
		notifier = utils.NewMailNotifier(cfg)
	} else {
		log.Println("SMTP not configured, booking e-mails disabled")
	}

	reservations := repository.NewGormReservationRepository(database.DB)
	configs := repository.NewGormConfigRepository(database.DB)

	configService := service.NewConfigService(configs, broker, service.ConfigOptions{
		Location: cfg.VenueTZ,
		Uploader: uploader,
	})
	bookingService := service.NewBookingService(reservations, configService, broker, service.BookingOptions{
		HoldDuration: cfg.HoldDuration,
		LockMode:     cfg.LockMode,
		Notifier:     notifier,
	})
	authService := service.NewAuthService(cfg.AdminUser, cfg.AdminPasswordHash, cfg.JWTSecret)

	generator, err := concierge.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("Concierge offline: %v", err)
	}
	if generator == nil {
		log.Println("GEMINI_API_KEY not set, concierge answers with the maintenance text")
	}

	// Subscribe before hydrating so nothing written in between is lost.
	events, err := broker.Subscribe(ctx)
	if err != nil {
		log.Fatalf("subscribe change feed: %v", err)
	}
	mirror := realtime.NewMirror()
	if err := hydrate(ctx, mirror, reservations, configs); err != nil {
		log.Fatalf("hydrate mirror: %v", err)
	}
	hub := realtime.NewHub()
	go realtime.Run(ctx, events, mirror, hub)

	if err := helper.StartPendingSweeper(cfg.SweepEvery, bookingService.SweepExpired); err != nil {
		log.Printf("Pending sweeper not started: %v", err)
	}
	defer helper.StopPendingSweeper()

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.BodyLimitMB * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	handler.Init(handler.Deps{
		Booking:       bookingService,
		Config:        configService,
		Auth:          authService,
		Concierge:     concierge.New(generator),
		Mirror:        mirror,
		Hub:           hub,
		SecureCookies: strings.HasPrefix(cfg.CorsOrigins, "https://"),
	})
	router.SetupRoutes(app, router.Options{
		Secret:       authService.Secret(),
		ChatLimiter:  middleware.NewRateLimiter(cfg.ChatRatePerMinute, 3),
		LoginLimiter: middleware.NewRateLimiter(cfg.LoginRatePerMinute, 3),
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func hydrate(ctx context.Context, mirror *realtime.Mirror, reservations repository.ReservationRepository, configs repository.ConfigRepository) error {
	rows, err := reservations.List(ctx, "")
	if err != nil {
		return err
	}
	cfgRows, err := configs.List(ctx)
	if err != nil {
		return err
	}
	mirror.Hydrate(rows, cfgRows)
	log.Printf("Mirror hydrated with %d reservations", len(rows))
	return nil
}
