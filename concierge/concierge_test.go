package concierge

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"lounge_booking/constants"
	"lounge_booking/model"
)

type fakeGenerator struct {
	answer  string
	err     error
	history []model.ChatTurn
	message string
}

func (f *fakeGenerator) Generate(_ context.Context, history []model.ChatTurn, message string) (string, error) {
	f.history = history
	f.message = message
	return f.answer, f.err
}

func TestReplyFallbacks(t *testing.T) {
	var unconfigured *GeminiGenerator

	cases := []struct {
		name string
		gen  Generator
		want string
	}{
		{"no generator", nil, constants.CHAT_MAINTENANCE},
		{"missing key", unconfigured, constants.CHAT_MAINTENANCE},
		{"call error", &fakeGenerator{err: errors.New("quota")}, constants.CHAT_OFFLINE},
		{"empty answer", &fakeGenerator{answer: "  "}, constants.CHAT_EMPTY_RESPONSE},
		{"answer", &fakeGenerator{answer: "Abrimos às 22h."}, "Abrimos às 22h."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.gen).Reply(context.Background(), "que horas abre?", nil)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReplyPassesHistory(t *testing.T) {
	gen := &fakeGenerator{answer: "ok"}
	history := []model.ChatTurn{{Role: "user", Text: "oi"}, {Role: "model", Text: "olá"}}
	New(gen).Reply(context.Background(), "preço do camarote?", history)

	if len(gen.history) != 2 || gen.message != "preço do camarote?" {
		t.Fatalf("generator got history %v message %q", gen.history, gen.message)
	}
}

func TestBuildContentsRoles(t *testing.T) {
	contents := BuildContents([]model.ChatTurn{{Role: "user", Text: "oi"}, {Role: "model", Text: "olá"}}, "tchau")
	if len(contents) != 3 {
		t.Fatalf("expected 3 contents, got %d", len(contents))
	}
	wantRoles := []string{string(genai.RoleUser), string(genai.RoleModel), string(genai.RoleUser)}
	for i, c := range contents {
		if c.Role != wantRoles[i] {
			t.Fatalf("content %d role %q, want %q", i, c.Role, wantRoles[i])
		}
	}
	if contents[2].Parts[0].Text != "tchau" {
		t.Fatalf("last content should be the new message")
	}
}
