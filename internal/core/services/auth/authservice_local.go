package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/pcv-2026.net/internal/core/ports/primary"
	"gitlab.com/pcv-2026.net/internal/core/ports/secondary"
	"gitlab.com/pcv-2026.net/internal/domain"
	"gitlab.com/pcv-2026.net/internal/static/errs"
)

var _ IAuthService = &localAuthService{}

type localAuthService struct {
	userPort    secondary.UserPort
	jwtProvider primary.JWTService
}

func NewLocalAuthService(
	userPort secondary.UserPort,
	jwtProvider primary.JWTService,
) IAuthService {
	return &localAuthService{
		userPort:    userPort,
		jwtProvider: jwtProvider,
	}
}

func (l localAuthService) ProviderName() domain.Provider {
	return domain.ProviderLocal
}

func (l localAuthService) Login(ctx context.Context, users *domain.Users) (string, error) {
	usr, err := l.userPort.GetByUserName(ctx, users.UserName)
	if err != nil {
		return "", err
	}
	if usr == nil || usr.PasswordHash == nil || users.PasswordHash == nil {
		return "", errs.InvalidCredentials
	}
	valid, err := l.jwtProvider.VerifyPassword(ctx, *usr.PasswordHash, *users.PasswordHash)
	if err != nil || !valid {
		return "", errs.InvalidCredentials
	}

	return generateToken(ctx, l.jwtProvider, usr)
}

func generateToken(ctx context.Context, jwtProvider primary.JWTService, usr *domain.Users) (string, error) {
	claims := map[string]interface{}{
		"username":   usr.UserName,
		"permission": []string{"practice.submit"},
	}
	token, err := jwtProvider.GenerateTokenHMAC(ctx, jwt.SigningMethodHS256.Name, claims)
	if err != nil {
		return "", errs.GeneratingToken
	}
	return token, nil
}
