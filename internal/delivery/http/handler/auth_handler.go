package handler

import (
	"placement-portal/internal/delivery/http/dto"
	"placement-portal/internal/delivery/http/middleware"
	"placement-portal/internal/pkg/response"
	"placement-portal/internal/usecase"
	ucauth "placement-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/login", h.Login)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	adm, tokens, err := h.uc.Login(c.Context(), ucauth.LoginInput{Username: req.Username, Password: req.Password})
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LoginResponse{
		Admin:        dto.AdminResponse{ID: adm.ID.String(), Username: adm.Username},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Refresh accepts the refresh token in the JSON body or as a bearer token.
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req dto.RefreshRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}
	token := req.RefreshToken
	if token == "" {
		var ok bool
		token, ok = middleware.BearerToken(c.Get("Authorization"))
		if !ok {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
	}

	tokens, err := h.uc.Refresh(c.Context(), token)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, tokens)
}
