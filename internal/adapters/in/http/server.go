package http

import (
	"context"
	"errors"
	"net/http"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/generated/servers"
	"labflow/internal/metrics"
	"labflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Use case ports the server depends on. The command and query handlers satisfy
// them directly.
type (
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) (presenters.AuthResponse, error)
	}
	AuthenticateUserHandler interface {
		Handle(ctx context.Context, cmd commands.AuthenticateUserCommand) (presenters.AuthResponse, error)
	}
	DeleteUserHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteUserCommand) error
	}
	GetUserHandler interface {
		Handle(ctx context.Context, query queries.GetUserQuery) (presenters.UserResponse, error)
	}
	ListUsersHandler interface {
		Handle(ctx context.Context, query queries.ListUsersQuery) (presenters.Page[presenters.UserResponse], error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (presenters.OrderResponse, error)
	}
	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (presenters.OrderResponse, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (presenters.OrderResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (presenters.Page[presenters.OrderResponse], error)
	}
	OrderStatsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (queries.GetOrderStatsQueryResponse, error)
	}
)

// Handlers groups every use case the server exposes.
type Handlers struct {
	RegisterUser     RegisterUserHandler
	AuthenticateUser AuthenticateUserHandler
	DeleteUser       DeleteUserHandler
	GetUser          GetUserHandler
	ListUsers        ListUsersHandler

	CreateOrder  CreateOrderHandler
	AdvanceOrder AdvanceOrderHandler
	DeleteOrder  DeleteOrderHandler
	GetOrder     GetOrderHandler
	ListOrders   ListOrdersHandler
	OrderStats   OrderStatsHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.Recorder
}

// NewServer wires the use case handlers into a servers.ServerInterface implementation.
func NewServer(handlers Handlers, recorder *metrics.Recorder) *Server {
	return &Server{handlers: handlers, metrics: recorder}
}

var _ servers.ServerInterface = (*Server)(nil)

// Register handles POST /auth/register.
func (s *Server) Register(c echo.Context) error {
	var body servers.Credentials
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewID(), body.Email, body.Password)
	if err != nil {
		s.metrics.AuthAttempt("register", authOutcome(err))
		return err
	}

	resp, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	s.metrics.AuthAttempt("register", authOutcome(err))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login.
func (s *Server) Login(c echo.Context) error {
	var body servers.Credentials
	if err := c.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAuthenticateUserCommand(body.Email, body.Password)
	if err != nil {
		s.metrics.AuthAttempt("login", authOutcome(err))
		return err
	}

	resp, err := s.handlers.AuthenticateUser.Handle(c.Request().Context(), cmd)
	s.metrics.AuthAttempt("login", authOutcome(err))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// ListUsers handles GET /user.
func (s *Server) ListUsers(c echo.Context, params servers.ListUsersParams) error {
	query, err := queries.NewListUsersQuery(valueOr(params.Page, kernel.DefaultPage), valueOr(params.Limit, kernel.DefaultLimit))
	if err != nil {
		return err
	}

	page, err := s.handlers.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// GetUser handles GET /user/{id}.
func (s *Server) GetUser(c echo.Context, id string) error {
	query, err := queries.NewGetUserQuery(id)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteUser handles DELETE /user/{id}.
func (s *Server) DeleteUser(c echo.Context, id string) error {
	cmd, err := commands.NewDeleteUserCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /order.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	query, err := queries.NewListOrdersQuery(
		valueOr(params.Page, kernel.DefaultPage),
		valueOr(params.Limit, kernel.DefaultLimit),
		valueOr(params.State, ""),
	)
	if err != nil {
		return err
	}

	page, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// CreateOrder handles POST /order.
func (s *Server) CreateOrder(c echo.Context) error {
	var body servers.NewOrder
	if err := c.Bind(&body); err != nil {
		return err
	}

	services := make([]commands.ServiceInput, 0, len(body.Services))
	for _, svc := range body.Services {
		services = append(services, commands.ServiceInput{
			Name:   svc.Name,
			Value:  svc.Value,
			Status: valueOr(svc.Status, ""),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewID(), body.Lab, body.Patient, body.Customer, services)
	if err != nil {
		return err
	}

	resp, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	s.metrics.OrderCreated()
	return c.JSON(http.StatusCreated, resp)
}

// GetOrderStats handles GET /order/stats.
func (s *Server) GetOrderStats(c echo.Context) error {
	stats, err := s.handlers.OrderStats.Handle(c.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// GetOrder handles GET /order/{id}.
func (s *Server) GetOrder(c echo.Context, id string) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// DeleteOrder handles DELETE /order/{id}.
func (s *Server) DeleteOrder(c echo.Context, id string) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	s.metrics.OrderDeleted()
	return c.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles PATCH /order/{id}/advance.
func (s *Server) AdvanceOrder(c echo.Context, id string) error {
	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return err
	}

	resp, err := s.handlers.AdvanceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	if to, parseErr := order.ParseState(resp.State); parseErr == nil {
		s.metrics.OrderTransitioned(previousState(to), resp.State)
	}
	return c.JSON(http.StatusOK, resp)
}

// previousState walks the lifecycle backwards; every state has at most one predecessor.
func previousState(to order.State) string {
	for _, s := range order.States() {
		if next, ok := s.NextState(); ok && next == to {
			return s.String()
		}
	}
	return order.StateUnknown.String()
}

func authOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, errs.ErrConflict):
		return "conflict"
	case errors.Is(err, errs.ErrUnauthorized):
		return "invalid_credentials"
	case isValidationError(err):
		return "invalid"
	default:
		return "error"
	}
}

func valueOr[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
