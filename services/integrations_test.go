package services

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	apperrors "nexustech/errors"
	"nexustech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestAIServiceAsk(t *testing.T) {
	ctx := context.Background()

	gen := &stubGenerator{text: "Hello!"}
	text, err := NewAIService(gen).Ask(ctx, "say hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", text)
	assert.Equal(t, "say hi", gen.prompt)

	_, err = NewAIService(gen).Ask(ctx, "   ")
	assert.Equal(t, http.StatusBadRequest, apperrors.GetAppError(err).Status())

	_, err = NewAIService(nil).Ask(ctx, "hi")
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.GetAppError(err).Status())

	_, err = NewAIService(&stubGenerator{err: errBoom}).Ask(ctx, "hi")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUpstream))
	assert.Equal(t, http.StatusInternalServerError, apperrors.GetAppError(err).Status())
}

type stubUploader struct {
	body   []byte
	folder string
}

func (s *stubUploader) Upload(_ context.Context, file io.Reader, folder string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.body = data
	s.folder = folder
	return "https://cdn.example.com/avatars/a.png", nil
}

func TestAvatarService(t *testing.T) {
	ctx := context.Background()
	users := newTestUserService(newTestDB(t))
	mustCreateUser(t, users, "emp@example.com", models.RoleEmployee, 0)

	up := &stubUploader{}
	url, err := NewAvatarService(up, users).SetAvatar(ctx, "emp@example.com", bytes.NewBufferString("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/a.png", url)
	assert.Equal(t, "avatars", up.folder)
	assert.Equal(t, []byte("png"), up.body)

	user, err := users.FindByEmail(ctx, "emp@example.com")
	require.NoError(t, err)
	assert.Equal(t, url, user.Photo)

	_, err = NewAvatarService(up, users).SetAvatar(ctx, "ghost@example.com", bytes.NewBufferString("png"))
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUserNotFound))

	_, err = NewAvatarService(nil, users).SetAvatar(ctx, "emp@example.com", bytes.NewBufferString("png"))
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.GetAppError(err).Status())
}

type stubVerifier struct {
	email string
	err   error
}

func (s stubVerifier) Verify(context.Context, string) (string, error) {
	return s.email, s.err
}

func TestLoginWithGoogle(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenService("secret", time.Hour)
	dir := mapDirectory{"emp@example.com": {Email: "emp@example.com", Role: models.RoleEmployee}}

	auth := NewAuthService(AuthServiceOptions{Tokens: tokens, Dir: dir, Google: stubVerifier{email: "emp@example.com"}})
	token, err := auth.LoginWithGoogle(ctx, "id-token")
	require.NoError(t, err)
	email, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp@example.com", email)

	auth = NewAuthService(AuthServiceOptions{Tokens: tokens, Dir: dir, Google: stubVerifier{email: "ghost@example.com"}})
	_, err = auth.LoginWithGoogle(ctx, "id-token")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeForbidden))

	auth = NewAuthService(AuthServiceOptions{Tokens: tokens, Dir: dir, Google: stubVerifier{err: errBoom}})
	_, err = auth.LoginWithGoogle(ctx, "id-token")
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetAppError(err).Status())

	auth = NewAuthService(AuthServiceOptions{Tokens: tokens, Dir: dir})
	_, err = auth.LoginWithGoogle(ctx, "id-token")
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.GetAppError(err).Status())
}
