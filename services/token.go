package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "nexustech/errors"

	"github.com/dgrijalva/jwt-go"
)

type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// TokenService issues and verifies the self-contained session credential.
// Nothing is stored server side.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// GenerateToken signs a token for email valid for the configured ttl.
func (s *TokenService) GenerateToken(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.Validation("Email is required")
	}

	now := s.now()
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Internal("Could not sign token", err)
	}
	return signed, nil
}

// ParseToken verifies signature and expiry and returns the email claim.
func (s *TokenService) ParseToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeMissingToken, "Unauthenticated", apperrors.ErrUnauthorized)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Unauthenticated", errors.Join(apperrors.ErrUnauthorized, err))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Email == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Unauthenticated", apperrors.ErrUnauthorized)
	}
	return claims.Email, nil
}
