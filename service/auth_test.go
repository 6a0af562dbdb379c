package service

import (
	"errors"
	"testing"

	"lounge_booking/helper"
)

func TestLogin(t *testing.T) {
	hash, err := helper.HashPassword("noite-preta")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	auth := NewAuthService("BLACK", hash, "test-secret")

	token, claim, err := auth.Login("  black ", "noite-preta")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if claim.Username != "BLACK" || claim.Role != helper.RoleAdmin {
		t.Fatalf("unexpected claim %+v", claim)
	}

	parsed, err := helper.ParseToken(auth.Secret(), token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got, ok := helper.ClaimFromToken(parsed); !ok || got.Username != "BLACK" {
		t.Fatalf("token claim %+v ok=%v", got, ok)
	}

	if _, err := helper.ParseToken([]byte("other-secret"), token); err == nil {
		t.Fatalf("token must not verify with another secret")
	}
}

func TestLoginRejects(t *testing.T) {
	hash, _ := helper.HashPassword("noite-preta")

	cases := []struct {
		name string
		auth *AuthService
		user string
		pass string
	}{
		{"wrong password", NewAuthService("BLACK", hash, "s"), "BLACK", "errada"},
		{"wrong user", NewAuthService("BLACK", hash, "s"), "WHITE", "noite-preta"},
		{"no hash configured", NewAuthService("BLACK", "", "s"), "BLACK", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := tc.auth.Login(tc.user, tc.pass); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
