package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminSubject  = "admin"
	tokenLifetime = 24 * time.Hour
)

// AuthService guards question-bank mutations with a single admin password.
// With an empty password hash it is disabled and every check passes.
type AuthService struct {
	passwordHash []byte
	jwtSecret    []byte
	now          func() time.Time
}

func NewAuthService(passwordHash, jwtSecret string) *AuthService {
	return &AuthService{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		now:          time.Now,
	}
}

func (s *AuthService) Enabled() bool {
	return len(s.passwordHash) > 0
}

func (s *AuthService) Login(password string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("admin login disabled: %w", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	}
	return s.GenerateToken()
}

func (s *AuthService) GenerateToken() (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": adminSubject,
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return fmt.Errorf("invalid token: %w", ErrUnauthorized)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub != adminSubject {
		return fmt.Errorf("invalid subject: %w", ErrUnauthorized)
	}
	return nil
}
