package auth

import (
	"context"
	"testing"
	"time"

	"github.com/anoixa/photo-album/database/models"
	"github.com/anoixa/photo-album/database/repo/accounts"
	"github.com/anoixa/photo-album/internal/testutils"
	"github.com/anoixa/photo-album/utils/password"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-characters-long"

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(testSecret, 30*time.Minute)
	require.NoError(t, err)
	return svc
}

// --- 测试 JWTService ---

func TestNewJWTService_SecretRules(t *testing.T) {
	_, err := NewJWTService("too-short", time.Hour)
	assert.Error(t, err)

	svc, err := NewJWTService("", time.Hour)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(svc.GetConfig().Secret), minSecretLength)

	svc, err = NewJWTService(testSecret, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultExpiresIn, svc.GetConfig().ExpiresIn)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, expiry, err := svc.GenerateAccessToken("alice", 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiry, 5*time.Second)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, expiry.Unix(), claims.Exp)
	assert.NotZero(t, claims.Iat)
}

func TestJWTService_RejectsBadTokens(t *testing.T) {
	svc := newTestJWTService(t)
	other, err := NewJWTService("another-secret-key-at-least-32-characters", time.Hour)
	require.NoError(t, err)

	foreign, _, err := other.GenerateAccessToken("alice", 1)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1, "type": TokenTypeAccess, "exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1, "type": "refresh", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1, "type": TokenTypeAccess,
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", foreign},
		{"expired", expired},
		{"wrong type", refresh},
		{"missing exp", noExp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": 1, "type": TokenTypeAccess, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

// --- 测试 LoginService ---

func setupLogin(t *testing.T) *LoginService {
	t.Helper()
	provider := testutils.SetupProvider(t)

	hashed, err := password.Hash("correct-horse")
	require.NoError(t, err)
	require.NoError(t, provider.DB().Create(&models.User{Username: "alice", Password: hashed}).Error)

	return NewLoginService(accounts.NewRepository(provider), newTestJWTService(t))
}

func TestLoginService_Login(t *testing.T) {
	svc := setupLogin(t)

	result, err := svc.Login(context.Background(), "alice", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User.Username)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := svc.jwtService.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestLoginService_InvalidCredentials(t *testing.T) {
	svc := setupLogin(t)

	_, err := svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
