package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"udhaarbook/internal/handler/api"
	"udhaarbook/internal/handler/middleware"
	"udhaarbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	loanHandler *api.LoanHandler,
	handshakeHandler *api.HandshakeHandler,
	verifyHandler *api.VerifyHandler,
	authMiddleware *middleware.AuthMiddleware,
	verifyLimiter middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, loanHandler, handshakeHandler, verifyHandler, authMiddleware, verifyLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	loanHandler *api.LoanHandler,
	handshakeHandler *api.HandshakeHandler,
	verifyHandler *api.VerifyHandler,
	authMiddleware *middleware.AuthMiddleware,
	verifyLimiter middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public verification surface: no auth, rate limited per client address.
	rateLimited := middleware.VerifyRateLimit(verifyLimiter)
	engine.GET("/v/:code", rateLimited, verifyHandler.PreviewCode)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/verify", Handler: verifyHandler.Verify, Mw: []gin.HandlerFunc{rateLimited}},
		})

		loans := apiGroup.Group("/loans")
		loans.Use(authMiddleware.RequireAuth())
		{
			addRoutes(loans, []route{
				{Method: http.MethodPost, Path: "", Handler: loanHandler.CreateLoan},
				{Method: http.MethodGet, Path: "/:id", Handler: loanHandler.GetLoan},
				{Method: http.MethodPost, Path: "/:id/handshake", Handler: handshakeHandler.IssueCode},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
