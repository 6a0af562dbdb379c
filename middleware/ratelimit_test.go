package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimitPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	if !rl.Allow("10.0.0.1") || !rl.Allow("10.0.0.1") {
		t.Fatalf("burst of two should pass")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("third request within the minute should be limited")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("other clients keep their own bucket")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	app := fiber.New()
	app.Post("/chat", RateLimit(NewRateLimiter(1, 1)), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/chat", nil))
	if err != nil || resp.StatusCode != fiber.StatusOK {
		t.Fatalf("first request: status %v err %v", resp.StatusCode, err)
	}
	resp, err = app.Test(httptest.NewRequest("POST", "/chat", nil))
	if err != nil || resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("second request: status %v err %v", resp.StatusCode, err)
	}
}
