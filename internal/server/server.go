package server

import (
	"bookshop-api/internal/auth"
	"bookshop-api/internal/handler"
	custommw "bookshop-api/internal/middleware"
	"bookshop-api/internal/service"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	authHandler     *handler.AuthHandler
	bookHandler     *handler.BookHandler
	checkoutHandler *handler.CheckoutHandler
	tokens          auth.TokenService
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	authService service.AuthService,
	bookService service.BookService,
	checkoutService service.CheckoutService,
	tokens auth.TokenService,
	logger *slog.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		authHandler:     handler.NewAuthHandler(authService, logger),
		bookHandler:     handler.NewBookHandler(bookService, logger),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, logger),
		tokens:          tokens,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.echo.POST("/register", s.authHandler.Register)
	s.echo.POST("/login", s.authHandler.Login)

	// checkout stays public: no cart/ownership concept ties a charge to
	// a session, so guests can pay
	s.echo.POST("/checkout", s.checkoutHandler.Checkout)

	protected := s.echo.Group("", custommw.Auth(s.tokens))
	protected.GET("/books", s.bookHandler.List)
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
