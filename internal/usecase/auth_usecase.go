package usecase

import (
	"context"
	"errors"

	"placement-portal/internal/domain/admin"
	"placement-portal/internal/pkg/apperr"
	"placement-portal/internal/pkg/jwt"
	ucauth "placement-portal/internal/usecase/auth"
)

var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	Login(ctx context.Context, in ucauth.LoginInput) (admin.Admin, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	authSvc *ucauth.Service
	admins  admin.Repository
	tokens  jwt.Service
}

func NewAuthUsecase(admins admin.Repository, tokens jwt.Service) *Auth {
	return &Auth{authSvc: ucauth.NewService(admins), admins: admins, tokens: tokens}
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (admin.Admin, TokenPair, error) {
	a, err := u.authSvc.Login(ctx, in)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidCredentials) {
			return admin.Admin{}, TokenPair{}, apperr.Unauthorized("invalid username or password", err)
		}
		return admin.Admin{}, TokenPair{}, apperr.Internal("login failed", err)
	}

	pair, err := u.issue(a)
	if err != nil {
		return admin.Admin{}, TokenPair{}, err
	}
	return a, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, apperr.Unauthorized("refresh token is required", nil)
	}

	who, err := u.tokens.VerifyRefresh(refreshToken)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenPair{}, apperr.Unauthorized("refresh token expired", ErrRefreshTokenExpired)
	case errors.Is(err, jwt.ErrNoKey):
		return TokenPair{}, apperr.Internal("refresh failed", err)
	case err != nil:
		return TokenPair{}, apperr.Unauthorized("invalid refresh token", ErrInvalidRefreshToken)
	}

	a, err := u.admins.GetByID(ctx, who.ID)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return TokenPair{}, apperr.Unauthorized("invalid refresh token", ErrInvalidRefreshToken)
		}
		return TokenPair{}, apperr.Internal("refresh failed", err)
	}
	return u.issue(a)
}

func (u *Auth) issue(a admin.Admin) (TokenPair, error) {
	p, err := u.tokens.IssuePair(jwt.Admin{ID: a.ID, Username: a.Username})
	if err != nil {
		return TokenPair{}, apperr.Internal("issue tokens", err)
	}
	return TokenPair{AccessToken: p.Access, RefreshToken: p.Refresh}, nil
}
