package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"lounge_booking/handler"
	"lounge_booking/middleware"
	"lounge_booking/validate"
)

type Options struct {
	Secret       []byte
	ChatLimiter  *middleware.RateLimiter
	LoginLimiter *middleware.RateLimiter
}

func SetupRoutes(app *fiber.App, opts Options) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")
	protected := middleware.Protected(opts.Secret)

	v1.Get("/venue", handler.GetVenue)
	v1.Get("/config", handler.GetConfig)
	v1.Get("/floor-plan/:day", validate.Day("day"), handler.GetFloorPlan)
	v1.Post("/chat", middleware.RateLimit(opts.ChatLimiter), validate.Chat(), handler.Chat)
	v1.Get("/realtime", handler.UpgradeRequired, websocket.New(handler.RealtimeSocket(false)))

	spots := v1.Group("/spots")
	spots.Post("/:day/:type/:number/select", validate.SpotParams(), handler.SelectSpot)
	spots.Post("/:day/:type/:number/guest", validate.SpotParams(), validate.GuestForm(), handler.CheckGuest)
	spots.Post("/:day/:type/:number/confirm", validate.SpotParams(), validate.GuestForm(), handler.ConfirmReservation)

	auth := v1.Group("/auth")
	auth.Post("/login", middleware.RateLimit(opts.LoginLimiter), validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", protected, handler.Me)

	admin := v1.Group("/admin", protected)
	admin.Get("/reservations", validate.Day(""), handler.ListReservations)
	admin.Post("/spots/:day/:type/:number/block", validate.SpotParams(), handler.ToggleBlock)
	admin.Delete("/spots/:day/:type/:number", validate.SpotParams(), handler.ReleaseSpot)
	admin.Get("/spots/:day/:type/:number/receipt", validate.SpotParams(), handler.GetReceipt)
	admin.Get("/spots/:day/:type/:number/qr", validate.SpotParams(), handler.GetCheckInQR)
	admin.Put("/prices", validate.Prices(), handler.SavePrices)
	admin.Put("/flyers/:day", validate.Day("day"), handler.SaveFlyer)
	admin.Delete("/flyers/:day", validate.Day("day"), handler.RemoveFlyer)
	admin.Get("/update-logs", handler.GetUpdateLogs)
	admin.Get("/realtime", handler.UpgradeRequired, websocket.New(handler.RealtimeSocket(true)))
}
