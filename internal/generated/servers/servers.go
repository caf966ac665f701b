// Package servers binds the routes of api/openapi.yml to a ServerInterface, in the
// layout oapi-codegen's echo server target uses: request types, a wrapper that
// decodes path and query parameters, and RegisterHandlers.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Credentials is the body of POST /auth/register and POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NewService struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status *string `json:"status,omitempty"`
}

// NewOrder is the body of POST /order.
type NewOrder struct {
	Lab      string       `json:"lab"`
	Patient  string       `json:"patient"`
	Customer string       `json:"customer"`
	Services []NewService `json:"services"`
}

type ListUsersParams struct {
	Page  *int `form:"page,omitempty" json:"page,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

type ListOrdersParams struct {
	Page  *int    `form:"page,omitempty" json:"page,omitempty"`
	Limit *int    `form:"limit,omitempty" json:"limit,omitempty"`
	State *string `form:"state,omitempty" json:"state,omitempty"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type ServerInterface interface {
	// (POST /auth/register)
	Register(ctx echo.Context) error
	// (POST /auth/login)
	Login(ctx echo.Context) error
	// (GET /user)
	ListUsers(ctx echo.Context, params ListUsersParams) error
	// (GET /user/{id})
	GetUser(ctx echo.Context, id string) error
	// (DELETE /user/{id})
	DeleteUser(ctx echo.Context, id string) error
	// (GET /order)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /order)
	CreateOrder(ctx echo.Context) error
	// (GET /order/stats)
	GetOrderStats(ctx echo.Context) error
	// (GET /order/{id})
	GetOrder(ctx echo.Context, id string) error
	// (DELETE /order/{id})
	DeleteOrder(ctx echo.Context, id string) error
	// (PATCH /order/{id}/advance)
	AdvanceOrder(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Register(ctx echo.Context) error {
	return w.Handler.Register(ctx)
}

func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	return w.Handler.Login(ctx)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	var params ListUsersParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListUsers(ctx, params)
}

func (w *ServerInterfaceWrapper) GetUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetUser(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteUser(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteUser(ctx, id)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "state", ctx.QueryParams(), &params.State); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter state: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderStats(ctx echo.Context) error {
	return w.Handler.GetOrderStats(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AdvanceOrder(ctx, id)
}

func bindID(ctx echo.Context) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/auth/register", wrapper.Register)
	router.POST(baseURL+"/auth/login", wrapper.Login)
	router.GET(baseURL+"/user", wrapper.ListUsers)
	router.GET(baseURL+"/user/:id", wrapper.GetUser)
	router.DELETE(baseURL+"/user/:id", wrapper.DeleteUser)
	router.GET(baseURL+"/order", wrapper.ListOrders)
	router.POST(baseURL+"/order", wrapper.CreateOrder)
	router.GET(baseURL+"/order/stats", wrapper.GetOrderStats)
	router.GET(baseURL+"/order/:id", wrapper.GetOrder)
	router.DELETE(baseURL+"/order/:id", wrapper.DeleteOrder)
	router.PATCH(baseURL+"/order/:id/advance", wrapper.AdvanceOrder)
}
