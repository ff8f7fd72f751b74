package handler

import (
	"bookshop-api/internal/dto"
	"bookshop-api/internal/service"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *slog.Logger
}

func NewCheckoutHandler(checkoutService service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid request body"})
	}

	clientSecret, err := h.checkoutService.CreateIntent(ctx, req.Amount, req.Currency)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "invalid amount"})
		}

		h.logger.Error("checkout failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "failed to process payment",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.CheckoutResponse{ClientSecret: clientSecret})
}
