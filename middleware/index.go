package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/helper"
	"lounge_booking/utils"
)

const AccessTokenCookie = "access_token"

// Protected admits only requests carrying a valid admin token, from the
// access_token cookie or an Authorization: Bearer header.
func Protected(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(AccessTokenCookie)

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(secret, token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}
		claim, ok := helper.ClaimFromToken(jwtToken)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("not an admin token"))
		}

		c.Locals("user", jwtToken)
		c.Locals("claim", claim)
		return c.Next()
	}
}
