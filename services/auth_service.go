package services

import (
	"context"
	"net/http"

	"nexustech/constants"
	apperrors "nexustech/errors"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier validates a Google sign-in id token and returns its email.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

type IDTokenVerifier struct {
	clientID string
}

func NewIDTokenVerifier(clientID string) *IDTokenVerifier {
	return &IDTokenVerifier{clientID: clientID}
}

func (v *IDTokenVerifier) Verify(ctx context.Context, idToken string) (string, error) {
	payload, err := idtoken.Validate(ctx, idToken, v.clientID)
	if err != nil {
		return "", err
	}
	email, _ := payload.Claims["email"].(string)
	return email, nil
}

type AuthService struct {
	tokens *TokenService
	dir    Directory
	google GoogleVerifier
	secure bool
}

type AuthServiceOptions struct {
	Tokens *TokenService
	Dir    Directory
	Google GoogleVerifier
	// Secure issues cross-site cookies (Secure, SameSite=None)
	Secure bool
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		tokens: opts.Tokens,
		dir:    opts.Dir,
		google: opts.Google,
		secure: opts.Secure,
	}
}

// Login issues a session token for the given email.
func (s *AuthService) Login(email string) (string, error) {
	return s.tokens.GenerateToken(email)
}

// LoginWithGoogle issues a session token for the owner of a Google id token.
// Only registered users may sign in this way.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (string, error) {
	if s.google == nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUnavailable, "Google sign-in is not configured", nil)
	}

	email, err := s.google.Verify(ctx, idToken)
	if err != nil || email == "" {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidToken, "Unauthenticated", err)
	}

	if _, err := s.dir.FindByEmail(ctx, email); err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
			return "", apperrors.Forbidden("Forbidden access")
		}
		return "", err
	}
	return s.tokens.GenerateToken(email)
}

// SetTokenCookie stores the session token in an HTTP-only cookie.
func (s *AuthService) SetTokenCookie(c *gin.Context, token string) {
	s.writeCookie(c, token, int(constants.TokenTTL.Seconds()))
}

func (s *AuthService) ClearTokenCookie(c *gin.Context) {
	s.writeCookie(c, "", -1)
}

func (s *AuthService) writeCookie(c *gin.Context, value string, maxAge int) {
	if s.secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(constants.TokenCookieName, value, maxAge, "/", "", s.secure, true)
}
