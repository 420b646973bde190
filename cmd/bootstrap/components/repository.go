package components

import (
	"udhaarbook/internal/handler/middleware"
	"udhaarbook/internal/infra/ratelimit"
	"udhaarbook/internal/infra/readstore"
	repo_impl "udhaarbook/internal/infra/repository"
	"udhaarbook/internal/pkg/config"
	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewLoanRepository,
			fx.As(new(commands.LoanRepository)),
		),
		fx.Annotate(
			repo_impl.NewCodeRepository,
			fx.As(new(commands.CodeRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewLoanReadStore,
			fx.As(new(queries.LoanReadStore)),
		),
		fx.Annotate(
			readstore.NewHandshakeReadStore,
			fx.As(new(queries.HandshakeReadStore)),
		),
		fx.Annotate(
			NewVerifyLimiter,
			fx.As(new(middleware.RateLimiter)),
		),
	),
)

func NewVerifyLimiter(client redis.UniversalClient, cfg config.Config) *ratelimit.RedisLimiter {
	return ratelimit.NewRedisLimiter(
		client,
		cfg.Handshake.RateLimitPrefix,
		cfg.Handshake.VerifyAttempts,
		cfg.Handshake.VerifyWindow,
	)
}
