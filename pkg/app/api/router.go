package api

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/chainsafe/cryptoballot/internal/metrics"
	accountservice "github.com/chainsafe/cryptoballot/pkg/account/service"
	apphttp "github.com/chainsafe/cryptoballot/pkg/app/http"
	"github.com/chainsafe/cryptoballot/pkg/auth"
	ballotservice "github.com/chainsafe/cryptoballot/pkg/ballot/service"
	"github.com/chainsafe/cryptoballot/pkg/config"
	friendservice "github.com/chainsafe/cryptoballot/pkg/friend/service"
)

const healthCheckTimeout = 5 * time.Second

// healthCheck reports whether a dependency is reachable
type healthCheck func(ctx context.Context) error

type routerDeps struct {
	ballots  ballotservice.Service
	accounts accountservice.Service
	friends  friendservice.Service
	tokens   auth.AccessTokenParser
	checks   map[string]healthCheck
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func newRouter(cfg *config.APIServerConfig, deps *routerDeps, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.AllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)
	r.Use(observeRequests)

	r.Get("/health", healthHandler(deps.checks, logger))
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler())
	}

	ballotservice.RegisterRoutes(r, deps.ballots, logger)
	accountservice.RegisterRoutes(r, deps.accounts, logger)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAccount(deps.tokens))

		ballotservice.RegisterAuthenticatedRoutes(r, deps.ballots, logger)
		accountservice.RegisterAuthenticatedRoutes(r, deps.accounts, logger)
		friendservice.RegisterRoutes(r, deps.friends, logger)
	})

	return r
}

// observeRequests records request latency labelled by the matched route pattern
func observeRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}

func healthHandler(checks map[string]healthCheck, logger *zap.Logger) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
		code := http.StatusOK
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				logger.Warn("Health check failed", zap.String("check", name), zap.Error(err))
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		apphttp.WriteJSON(w, code, resp)
	}
}
