// internal/routes/routes.go
package routes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaignadmin/internal/config"
	"campaignadmin/internal/handlers"
	appmw "campaignadmin/internal/middleware"
	"campaignadmin/internal/repository"
	"campaignadmin/internal/services"
)

// NewAdminService wires the repositories and optional S3 collaborators.
func NewAdminService(db *sqlx.DB, s3Config *config.S3Config) *services.AdminService {
	repos := services.Repositories{
		Campaigns:   repository.NewCampaignRepository(db),
		Submissions: repository.NewSubmissionRepository(db),
		Reports:     repository.NewReportRepository(db),
		Rewards:     repository.NewRewardRepository(db),
		Admins:      repository.NewAdminRepository(db),
	}

	var opts []services.Option
	if s3Config.Enabled() {
		opts = append(opts,
			services.WithPhotoSigner(services.NewS3PhotoSigner(s3Config)),
			services.WithReportExporter(services.NewS3ReportExporter(s3Config)),
		)
	}
	return services.NewAdminService(repos, opts...)
}

func SetupRoutes(db *sqlx.DB, cfg *config.Config, s3Config *config.S3Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	health := handlers.NewHealthHandler(db)
	r.Get("/", health.Root)
	r.Get("/health", health.Health)
	r.Handle("/metrics", promhttp.Handler())
	RegisterSwaggerRoutes(r)

	svc := NewAdminService(db, s3Config)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(appmw.JWTAuth(cfg.JWTSecret))
		if cfg.RateLimit.RPS > 0 {
			r.Use(appmw.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Handler)
		}

		RegisterCampaignRoutes(r, handlers.NewCampaignHandler(svc))
		RegisterTaskRoutes(r, handlers.NewTaskHandler(svc))
		RegisterReportRoutes(r, handlers.NewReportHandler(svc))
		RegisterRewardRoutes(r, handlers.NewRewardHandler(svc))
		RegisterAdminRoutes(r, handlers.NewAdminHandler(svc))
	})

	return r
}
