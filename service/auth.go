package service

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lounge_booking/helper"
	"lounge_booking/model"
)

const SessionTTL = 12 * time.Hour

// AuthService checks the single configured admin account and issues session tokens.
type AuthService struct {
	user         string
	passwordHash string
	secret       []byte
	ttl          time.Duration
}

// NewAuthService falls back to a per-process random secret, so sessions do not
// survive a restart when JWT_SECRET is unset.
func NewAuthService(user, passwordHash, secret string) *AuthService {
	if secret == "" {
		log.Println("JWT_SECRET not set, using a random session secret")
		secret = uuid.NewString() + uuid.NewString()
	}
	if passwordHash == "" {
		log.Println("ADMIN_PASSWORD_HASH not set, admin login disabled")
	}
	return &AuthService{
		user:         strings.TrimSpace(user),
		passwordHash: passwordHash,
		secret:       []byte(secret),
		ttl:          SessionTTL,
	}
}

func (s *AuthService) Secret() []byte {
	return s.secret
}

func (s *AuthService) TTL() time.Duration {
	return s.ttl
}

// Login compares the user name case-insensitively and the password against the
// bcrypt hash, returning a signed token on success.
func (s *AuthService) Login(username, password string) (string, model.TokenClaim, error) {
	if s.passwordHash == "" || !strings.EqualFold(strings.TrimSpace(username), s.user) {
		return "", model.TokenClaim{}, ErrInvalidCredentials
	}
	if !helper.CheckPasswordHash(password, s.passwordHash) {
		return "", model.TokenClaim{}, ErrInvalidCredentials
	}

	claim := model.TokenClaim{Username: strings.ToUpper(s.user), Role: helper.RoleAdmin}
	token, err := helper.GenerateAccessToken(s.secret, claim, s.ttl)
	if err != nil {
		return "", model.TokenClaim{}, err
	}
	return token, claim, nil
}
