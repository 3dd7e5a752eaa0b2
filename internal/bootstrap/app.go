package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/accounts"
	"jobboard-backend/internal/applicants"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/cache"
	"jobboard-backend/internal/employers"
	"jobboard-backend/internal/shared/auth"
	"jobboard-backend/internal/shared/config"
	"jobboard-backend/internal/shared/server"
	"jobboard-backend/internal/shared/storage/db"
	"jobboard-backend/internal/vacancies"
)

// App holds the wired dependency graph.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Cache  *cache.Cache
	Signer *auth.Signer

	EmployersRepo    employers.Repo
	ApplicantsRepo   applicants.Repo
	VacanciesRepo    vacancies.Repo
	ApplicationsRepo applications.Repo

	EmployersService    *employers.Service
	ApplicantsService   *applicants.Service
	VacanciesService    *vacancies.Service
	ApplicationsService *applications.Service
	AccountsService     *accounts.Service
}

// Build prepares shared dependencies and wires the router. With no database
// configured in a dev-like environment it falls back to in-memory
// repositories, which is also how the HTTP tests run.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Cache:  cache.New(cache.TTL{Sliding: cfg.CacheSliding, Absolute: cfg.CacheAbsolute}),
		Signer: auth.NewSigner(cfg.JWTSecret, cfg.TokenTTL),
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		Signer:       app.Signer,
		Accounts:     accounts.NewHandler(app.AccountsService),
		Employers:    employers.NewHandler(app.EmployersService),
		Applicants:   applicants.NewHandler(app.ApplicantsService),
		Vacancies:    vacancies.NewHandler(app.VacanciesService),
		Applications: applications.NewHandler(app.ApplicationsService),
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.EmployersRepo = &employers.PGRepo{DB: app.DB}
		app.ApplicantsRepo = &applicants.PGRepo{DB: app.DB}
		app.VacanciesRepo = &vacancies.PGRepo{DB: app.DB}
		app.ApplicationsRepo = &applications.PGRepo{DB: app.DB}
	} else {
		app.EmployersRepo = employers.NewMemoryRepo()
		app.ApplicantsRepo = applicants.NewMemoryRepo()
		app.VacanciesRepo = vacancies.NewMemoryRepo()
		app.ApplicationsRepo = applications.NewMemoryRepo()
	}

	app.EmployersService = employers.NewService(app.EmployersRepo, app.Cache)
	app.ApplicantsService = applicants.NewService(app.ApplicantsRepo, app.Cache)
	app.VacanciesService = vacancies.NewService(app.VacanciesRepo, app.Cache, app.ApplicationsRepo)
	app.ApplicationsService = applications.NewService(app.ApplicationsRepo, app.Cache, app.VacanciesService, app.ApplicantsRepo)
	app.AccountsService = accounts.NewService(app.EmployersRepo, app.ApplicantsRepo, app.Cache, app.Signer)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
