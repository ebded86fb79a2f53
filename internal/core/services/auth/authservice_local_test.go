package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/pcv-2026.net/internal/adapter/crypto"
	"gitlab.com/pcv-2026.net/internal/config"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

type fakeUserPort struct {
	byName   map[string]*domain.Users
	byGoogle map[string]*domain.Users
	created  []*domain.Users
}

func (f *fakeUserPort) Create(ctx context.Context, user *domain.Users) error {
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserPort) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return f.byName[userName], nil
}

func (f *fakeUserPort) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return f.byGoogle[googleID], nil
}

func strPtr(s string) *string { return &s }

func TestLocalLogin(t *testing.T) {
	ctx := context.Background()
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})

	hash, err := jwtProvider.EncryptPassword(ctx, "hunter2")
	require.NoError(t, err)

	users := &fakeUserPort{byName: map[string]*domain.Users{
		"alice": {UserName: "alice", PasswordHash: &hash},
	}}
	svc := NewLocalAuthService(users, jwtProvider)

	token, err := svc.Login(ctx, &domain.Users{UserName: "alice", PasswordHash: strPtr("hunter2")})
	require.NoError(t, err)

	payload, err := jwtProvider.DecodeTokenPayload(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Username)
}

func TestLocalLoginRejectsBadPassword(t *testing.T) {
	ctx := context.Background()
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})

	hash, err := jwtProvider.EncryptPassword(ctx, "hunter2")
	require.NoError(t, err)

	users := &fakeUserPort{byName: map[string]*domain.Users{
		"alice": {UserName: "alice", PasswordHash: &hash},
	}}
	svc := NewLocalAuthService(users, jwtProvider)

	_, err = svc.Login(ctx, &domain.Users{UserName: "alice", PasswordHash: strPtr("wrong")})
	assert.ErrorIs(t, err, errs.InvalidCredentials)

	_, err = svc.Login(ctx, &domain.Users{UserName: "nobody", PasswordHash: strPtr("hunter2")})
	assert.ErrorIs(t, err, errs.InvalidCredentials)
}

func TestGoogleLoginCreatesUserOnFirstSeen(t *testing.T) {
	ctx := context.Background()
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	users := &fakeUserPort{byGoogle: map[string]*domain.Users{}}
	svc := NewGoogleAuthService(users, jwtProvider, &config.GGAuthConfig{})

	_, err := svc.Login(ctx, &domain.Users{
		GoogleID:     strPtr("gid-1"),
		Email:        strPtr("bob@example.com"),
		AuthProvider: string(domain.ProviderGoogle),
	})
	require.NoError(t, err)

	require.Len(t, users.created, 1)
	assert.Equal(t, "bob", users.created[0].UserName)
}

func TestGoogleLoginRestrictedDomain(t *testing.T) {
	ctx := context.Background()
	jwtProvider := crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
	svc := NewGoogleAuthService(&fakeUserPort{}, jwtProvider, &config.GGAuthConfig{RestrictDomain: "example.edu"})

	_, err := svc.Login(ctx, &domain.Users{
		GoogleID:     strPtr("gid-1"),
		Email:        strPtr("bob@example.com"),
		AuthProvider: string(domain.ProviderGoogle),
	})
	assert.ErrorIs(t, err, errs.NotAllowedDomain)
}
