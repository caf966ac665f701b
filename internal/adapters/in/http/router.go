package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"labflow/internal/core/ports"
	"labflow/internal/generated/servers"
	"labflow/internal/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Server       *Server
	Document     *openapi3.T
	Tokens       ports.TokenService
	Metrics      *metrics.Recorder
	LoginLimit   LoginRateLimitConfig
	Logger       *slog.Logger
	Development  bool
	AllowOrigins []string
	// IPExtractor resolves the client address. Nil means the socket peer, ignoring
	// X-Forwarded-For and X-Real-IP.
	IPExtractor echo.IPExtractor
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRouter builds the echo instance serving the API, the docs and the
// operational endpoints.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger, cfg.Development)
	e.IPExtractor = cfg.IPExtractor
	if e.IPExtractor == nil {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	validate, err := ValidateRequests(cfg.Document)
	if err != nil {
		return nil, err
	}

	docJSON, err := json.Marshal(cfg.Document)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	registerSwaggerDoc(docJSON)

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Authentication runs before validation so anonymous callers never see schema
	// details.
	e.Use(
		RequestContext(),
		Instrument(cfg.Metrics, cfg.Logger),
		middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				cfg.Logger.ErrorContext(c.Request().Context(), "panic recovered",
					slog.Any("error", err),
					slog.String("stack", string(stack)),
				)
				return err
			},
		}),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestID},
		}),
		LoginRateLimit(cfg.LoginLimit, cfg.Metrics),
		Authenticate(cfg.Tokens, PublicPaths),
		validate,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/api-docs.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, docJSON)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, cfg.Server)

	return e, nil
}

type swaggerDoc struct {
	mu  sync.RWMutex
	doc string
}

func (s *swaggerDoc) ReadDoc() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

var (
	swaggerOnce     sync.Once
	swaggerRegistry = &swaggerDoc{}
)

// registerSwaggerDoc publishes doc to the Swagger UI. swag panics on a second
// registration under the same name, so later calls only swap the content.
func registerSwaggerDoc(doc []byte) {
	swaggerRegistry.mu.Lock()
	swaggerRegistry.doc = string(doc)
	swaggerRegistry.mu.Unlock()

	swaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerRegistry)
	})
}
