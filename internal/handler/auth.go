package handler

import (
	"bookshop-api/internal/dto"
	"bookshop-api/internal/service"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthHandler(authService service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
	}

	if err := h.authService.Register(ctx, req.Username, req.Email, req.Password); err != nil {
		h.logger.Error("register failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "failed to create account",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "account created"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
	}

	token, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "user not found"})
		case errors.Is(err, service.ErrBadCredentials):
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "incorrect password"})
		default:
			h.logger.Error("login failed", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, dto.MessageResponse{
				Message: "failed to log in",
				Error:   err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Message: "login successful",
	})
}
