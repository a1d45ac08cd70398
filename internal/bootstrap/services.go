package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/fireproject/fire-engine-bridge/config"
	"github.com/fireproject/fire-engine-bridge/internal/data"
	"github.com/fireproject/fire-engine-bridge/internal/data/cryptoutil"
	"github.com/fireproject/fire-engine-bridge/internal/ports"
	"github.com/fireproject/fire-engine-bridge/internal/service"
	"github.com/fireproject/fire-engine-bridge/internal/token"
)

// ServiceDeps groups the shared dependencies behind the service container.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds the constructed services and ports the HTTP
// layer needs.
type ServiceContainer struct {
	Auth      *service.AuthService
	Fire      *service.FireService
	Tokens    *token.Service
	Users     ports.UserRepository
	UserCache ports.UserCache // nil when Redis is disabled
}

// NewServices constructs the service graph from shared dependencies.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	users := data.NewUserRepo(deps.DB)
	hasher := cryptoutil.NewBcryptHasher(bcrypt.DefaultCost)

	tokens, err := token.NewService(token.Options{
		Secret: deps.Config.Auth.Secret,
		TTL:    deps.Config.Auth.TokenTTL,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	auth, err := service.NewAuthService(service.AuthServiceOptions{
		Users:  users,
		Hasher: hasher,
		Tokens: tokens,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	fire, err := service.NewFireService(service.FireServiceOptions{
		EngineURL: deps.Config.Engine.URL,
		Timeout:   deps.Config.Engine.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	container := ServiceContainer{
		Auth:   auth,
		Fire:   fire,
		Tokens: tokens,
		Users:  users,
	}
	if deps.RedisClient != nil {
		container.UserCache = data.NewRedisUserCache(deps.RedisClient)
	}
	return container, nil
}
