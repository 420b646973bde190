package components

import (
	"udhaarbook/internal/domain/handshake"
	"udhaarbook/internal/pkg/clock"
	"udhaarbook/internal/pkg/config"
	"udhaarbook/internal/usecase"
	"udhaarbook/internal/usecase/commands"
	"udhaarbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewHandshakePolicy,
)

func NewHandshakePolicy(cfg config.Config) (handshake.Policy, error) {
	return handshake.NewPolicy(
		cfg.Handshake.CodeLength,
		cfg.Handshake.CodeTTL,
		cfg.Handshake.VerifyAttempts,
		cfg.Handshake.VerifyWindow,
	)
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLoanCommands,
		func(
			loanRepo commands.LoanRepository,
			codeRepo commands.CodeRepository,
			policy handshake.Policy,
			cfg config.Config,
			clk clock.Clock,
		) commands.HandshakeCommands {
			return commands.NewHandshakeCommands(loanRepo, codeRepo, policy, cfg.Handshake.PublicBaseURL, clk)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLoanQueries,
		queries.NewHandshakeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
