package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "pet-clinic/docs"

	"pet-clinic/internal/adapters/auth/jwt"
	"pet-clinic/internal/config"
	"pet-clinic/internal/domain/appointments"
	"pet-clinic/internal/domain/inventory"
	"pet-clinic/internal/domain/medical"
	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/domain/pets"
	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/middleware"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/platform/metrics"
	"pet-clinic/internal/platform/ratelimit"
	"pet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: rate limit compartido entre réplicas.
	Redis *redis.Client

	// Opcional: espejo de notificaciones por email.
	Mailer notifications.Mailer
}

// NewRouter arma el handler HTTP completo. En auth.dev_mode no hay
// verificación de tokens y se acepta el header X-Debug-User-ID.
func NewRouter(opts Options) http.Handler {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	var (
		tokens   auth.TokenIssuer
		verifier auth.AuthVerifier
	)
	if cfg.Auth.JWTSecret != "" {
		m := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		tokens = m
		if !cfg.Auth.DevMode {
			verifier = m
		}
	}

	svcs := BuildServices(cfg, log, opts.DB, tokens, opts.Mailer)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))
	r.Use(metrics.Middleware)

	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", healthHandler(opts.DB))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	limiter := newLimiter(opts.Redis, cfg.RateLimit)
	loginGuard := middleware.RateLimit(limiter, "auth", middleware.ByIP, log)
	requestGuard := middleware.RateLimit(limiter, "appointments", middleware.ByUser, log)

	// Rutas por módulo
	users.RegisterRoutes(r, svcs.Users, log, loginGuard)
	pets.RegisterRoutes(r, svcs.Pets, log)
	appointments.RegisterRoutes(r, svcs.Appointments, log, requestGuard)
	notifications.RegisterRoutes(r, svcs.Notifications, log)
	medical.RegisterRoutes(r, svcs.Medical, log)
	inventory.RegisterRoutes(r, svcs.Inventory, log)

	return r
}

func newLimiter(rdb *redis.Client, cfg config.RateLimitConfig) ratelimit.Limiter {
	rc := ratelimit.Config{Limit: cfg.Requests, Window: cfg.Window}
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, rc)
	}
	return ratelimit.NewLocalLimiter(rc)
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// healthHandler godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unreachable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "postgres"})
	}
}
