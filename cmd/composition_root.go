package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"labflow/api"
	httpin "labflow/internal/adapters/in/http"
	"labflow/internal/adapters/out/crypto"
	"labflow/internal/adapters/out/postgres"
	"labflow/internal/adapters/out/token"
	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/jobs"
	"labflow/internal/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	defaultLoginRatePerSecond = 1
	defaultLoginRateBurst     = 5
)

type CompositionRoot struct {
	configs      Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	logger       *slog.Logger
	metrics      *metrics.Recorder
	hasher       *crypto.BcryptHasher
	tokens       *token.JWTService
	loginLimit   httpin.LoginRateLimitConfig
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	hasher, err := crypto.NewBcryptHasher(crypto.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create password hasher: %w", err)
	}

	ttl := configs.JWTExpiresIn
	if ttl <= 0 {
		ttl = token.DefaultTTL
	}
	tokens, err := token.NewJWTService(configs.JWTSecret, ttl)
	if err != nil {
		return nil, fmt.Errorf("create token service: %w", err)
	}

	ratePerSecond := configs.LoginRatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = defaultLoginRatePerSecond
	}
	burst := configs.LoginRateBurst
	if burst <= 0 {
		burst = defaultLoginRateBurst
	}

	recorder := metrics.NewRecorder()

	return &CompositionRoot{
		configs:      configs,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:       logger,
		metrics:      recorder,
		hasher:       hasher,
		tokens:       tokens,
		loginLimit: httpin.LoginRateLimitConfig{
			PerSecond: ratePerSecond,
			Burst:     burst,
			ExpiresIn: httpin.DefaultLoginRateLimitExpiry,
		},
	}, nil
}

func (c *CompositionRoot) Development() bool {
	return c.configs.IsDevelopment()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.tokens, c.logger)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	// Reads outside a transaction go straight to the pool.
	users := c.uowFactory.Create().UserRepository()
	return commands.NewAuthenticateUserCommandHandler(users, c.hasher, c.tokens, c.logger)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.uowFactory.Create().UserRepository())
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	advanceOrder := c.CreateAdvanceOrderCommandHandler()
	deleteOrder := c.CreateDeleteOrderCommandHandler()
	registerUser := c.CreateRegisterUserCommandHandler()
	authenticateUser := c.CreateAuthenticateUserCommandHandler()
	deleteUser := c.CreateDeleteUserCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		RegisterUser:     &registerUser,
		AuthenticateUser: &authenticateUser,
		DeleteUser:       &deleteUser,
		GetUser:          c.CreateGetUserQueryHandler(),
		ListUsers:        c.CreateListUsersQueryHandler(),
		CreateOrder:      &createOrder,
		AdvanceOrder:     &advanceOrder,
		DeleteOrder:      &deleteOrder,
		GetOrder:         c.CreateGetOrderQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		OrderStats:       c.CreateGetOrderStatsQueryHandler(),
	}, c.metrics)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}

	return httpin.NewRouter(httpin.RouterConfig{
		Server:      c.CreateServer(),
		Document:    doc,
		Tokens:      c.tokens,
		Metrics:     c.metrics,
		LoginLimit:  c.loginLimit,
		Logger:      c.logger,
		Development: c.configs.IsDevelopment(),
		IPExtractor: c.ipExtractor(),
	})
}

// ipExtractor trusts X-Forwarded-For only when the service sits behind a proxy
// on a private network; otherwise the socket peer is the client.
func (c *CompositionRoot) ipExtractor() echo.IPExtractor {
	if c.configs.TrustProxyHeaders {
		return echo.ExtractIPFromXFFHeader(
			echo.TrustLoopback(true),
			echo.TrustLinkLocal(false),
			echo.TrustPrivateNet(true),
		)
	}
	return echo.ExtractIPDirect()
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrderStatsQueryHandler(),
		c.metrics,
		c.configs.StatsCron,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
