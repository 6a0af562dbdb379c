package concierge

import (
	"context"
	"errors"
	"log"
	"strings"

	"lounge_booking/constants"
	"lounge_booking/model"
)

// ErrNotConfigured is returned by a generator that has no credentials.
var ErrNotConfigured = errors.New("generative model not configured")

// Generator produces the model's answer for a conversation.
type Generator interface {
	Generate(ctx context.Context, history []model.ChatTurn, message string) (string, error)
}

// Concierge answers chat messages and never fails: model problems become
// fixed apology texts.
type Concierge struct {
	gen Generator
}

func New(gen Generator) *Concierge {
	return &Concierge{gen: gen}
}

func (c *Concierge) Reply(ctx context.Context, message string, history []model.ChatTurn) string {
	if c.gen == nil {
		return constants.CHAT_MAINTENANCE
	}

	answer, err := c.gen.Generate(ctx, history, message)
	switch {
	case errors.Is(err, ErrNotConfigured):
		return constants.CHAT_MAINTENANCE
	case err != nil:
		log.Printf("concierge generate failed: %v", err)
		return constants.CHAT_OFFLINE
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return constants.CHAT_EMPTY_RESPONSE
	}
	return answer
}
