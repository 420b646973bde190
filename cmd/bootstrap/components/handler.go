package components

import (
	"udhaarbook/internal/handler"
	"udhaarbook/internal/handler/api"
	"udhaarbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLoanHandler,
		api.NewHandshakeHandler,
		api.NewVerifyHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
