package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"lounge_booking/constants"
	"lounge_booking/middleware"
	"lounge_booking/model"
	"lounge_booking/utils"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	token, claim, err := authService.Login(input.UserName, input.Password)
	if err != nil {
		return serviceError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Expires:  time.Now().Add(authService.TTL()),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   secureCookies,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"account":     claim,
		"accessToken": token,
	})
}

func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   secureCookies,
		Path:     "/",
	})
	return utils.SuccessResponse(c, fiber.StatusOK, constants.LOGOUT_SUCCESS)
}

// Me reports the current session so a client can restore the admin view on load.
func Me(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, c.Locals("claim").(model.TokenClaim))
}
