package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/accounts"
	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/metrics"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/vacancies"
)

// RouterDeps carries the wired handlers into route registration.
type RouterDeps struct {
	Config       config.Config
	Signer       *auth.Signer
	Accounts     *accounts.Handler
	Employers    *employers.Handler
	Applicants   *applicants.Handler
	Vacancies    *vacancies.Handler
	Applications *applications.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Reads that leak nothing sit on the open group; everything that needs a
// principal sits behind the Auth middleware.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(defaultRateLimits()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	deps.Accounts.RegisterRoutes(api)
	deps.Employers.RegisterRoutes(api)
	deps.Applicants.RegisterRoutes(api)
	deps.Vacancies.RegisterPublicRoutes(api)
	deps.Applications.RegisterPublicRoutes(api)

	authed := api.Group("", middleware.Auth(deps.Signer))
	registerMeRoutes(authed)
	deps.Vacancies.RegisterRoutes(authed)
	deps.Applications.RegisterRoutes(authed)

	return r
}

// defaultRateLimits throttles admissions harder than plain reads: a single
// applicant has no legitimate reason to hammer POST /applications.
func defaultRateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 50, Burst: 100},
			"APPLY":   {Rate: 1, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/applications" {
				return "APPLY"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
