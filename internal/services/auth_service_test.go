package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voiceguard/voice-api/internal/models"
	"github.com/voiceguard/voice-api/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(adminEmail string) (AuthService, *fakeUserRepo, *fakeAnalyticsRepo, *utils.JWTManager) {
	userRepo := newFakeUserRepo()
	analyticsRepo := newFakeAnalyticsRepo()
	jwtMgr := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(userRepo, analyticsRepo, jwtMgr, adminEmail, bcrypt.MinCost, zap.NewNop())
	return svc, userRepo, analyticsRepo, jwtMgr
}

func TestRegister_Success(t *testing.T) {
	svc, userRepo, analyticsRepo, jwtMgr := newAuthFixture("")
	ctx := context.Background()

	tokens, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, tokens.User)
	assert.Equal(t, "alice", tokens.User.Username)
	assert.Equal(t, models.RoleUser, tokens.User.Role)
	assert.False(t, tokens.User.ID.IsZero())

	// Password is stored hashed, not in the clear.
	stored, err := userRepo.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))

	// Both tokens resolve back to the email, through their own gates.
	email, err := jwtMgr.ParseAccess(tokens.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
	email, err = jwtMgr.ParseRefresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	// A zeroed analytics record is seeded.
	rec := analyticsRepo.get("a@x.com")
	require.NotNil(t, rec)
	assert.Zero(t, rec.TotalSamples)
}

func TestRegister_AdminRoleSeeded(t *testing.T) {
	svc, _, _, _ := newAuthFixture("root@x.com")
	ctx := context.Background()

	tokens, err := svc.Register(ctx, "root", "root@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, tokens.User.Role)

	other, err := svc.Register(ctx, "bob", "b@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, other.User.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc, _, _, _ := newAuthFixture("")
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"missing username", "", "a@x.com", "secret1", ErrMissingFields},
		{"missing email", "alice", "", "secret1", ErrMissingFields},
		{"missing password", "alice", "a@x.com", "", ErrMissingFields},
		{"bad email", "alice", "not-an-email", "secret1", ErrInvalidEmail},
		{"short password", "alice", "a@x.com", "12345", ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.username, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegister_DuplicateFields(t *testing.T) {
	svc, _, _, _ := newAuthFixture("")
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// Same email, different username.
	_, err = svc.Register(ctx, "alice2", "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Same username, different email.
	_, err = svc.Register(ctx, "alice", "a2@x.com", "secret1")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_Success(t *testing.T) {
	svc, _, _, jwtMgr := newAuthFixture("")
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	email, err := jwtMgr.ParseAccess(tokens.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	svc, _, _, _ := newAuthFixture("")
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// Wrong password and unknown email must fail identically.
	_, errWrongPassword := svc.Login(ctx, "a@x.com", "wrong-password")
	_, errUnknownEmail := svc.Login(ctx, "ghost@x.com", "whatever")

	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestRefresh(t *testing.T) {
	svc, userRepo, _, jwtMgr := newAuthFixture("")
	ctx := context.Background()

	tokens, err := svc.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	// A valid refresh token yields a fresh usable pair.
	renewed, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	email, err := jwtMgr.ParseAccess(renewed.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)

	// An access token is not accepted as a refresh credential.
	_, err = svc.Refresh(ctx, tokens.Token)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// A refresh token of a deleted account is rejected.
	require.NoError(t, userRepo.Delete(ctx, tokens.User.ID.Hex()))
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
