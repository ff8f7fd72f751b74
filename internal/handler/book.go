package handler

import (
	"bookshop-api/internal/dto"
	"bookshop-api/internal/service"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type BookHandler struct {
	bookService service.BookService
	logger      *slog.Logger
}

func NewBookHandler(bookService service.BookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

func (h *BookHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.List(ctx)
	if err != nil {
		h.logger.Error("list books failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "failed to fetch books",
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, books)
}
