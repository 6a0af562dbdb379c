package handler

import (
	"github.com/gofiber/fiber/v2"

	"lounge_booking/model"
	"lounge_booking/utils"
)

// Chat always answers 200; model failures come back as fixed texts.
func Chat(c *fiber.Ctx) error {
	input := c.Locals("chatInput").(model.ChatRequest)
	reply := chatConcierge.Reply(c.Context(), input.Message, input.History)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"role": "model",
		"text": reply,
	})
}
