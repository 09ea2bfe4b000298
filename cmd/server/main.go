package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/restauflow/internal/auth"
	"github.com/mmynk/restauflow/internal/catalog"
	"github.com/mmynk/restauflow/internal/checkout"
	"github.com/mmynk/restauflow/internal/config"
	"github.com/mmynk/restauflow/internal/metrics"
	"github.com/mmynk/restauflow/internal/middleware"
	"github.com/mmynk/restauflow/internal/service"
	"github.com/mmynk/restauflow/internal/session"
	"github.com/mmynk/restauflow/internal/storage/sqlite"
	"github.com/mmynk/restauflow/pkg/api/apiconnect"
	"github.com/mmynk/restauflow/pkg/logging"
)

const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.SetupWithLevel(slog.LevelInfo)
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.SeedMenu {
		menu, err := catalog.NewMemory(catalog.Seed())
		if err != nil {
			slog.Error("Failed to build seed menu", "error", err)
			os.Exit(1)
		}
		if _, err := store.SeedMenu(ctx, menu); err != nil {
			slog.Error("Failed to seed menu", "error", err)
			os.Exit(1)
		}
	}

	m := metrics.New()
	sessions := session.NewStore(cfg.SessionTTL)
	tokens := auth.NewJWTManager(cfg.SessionSecret, cfg.SessionTTL)

	menuSvc := service.NewMenuService(store, cfg.Settings, m)
	orderSvc := service.NewOrderService(service.OrderServiceDeps{
		Sessions: sessions,
		Menu:     store,
		Checkout: checkout.NewService(sessions, store, cfg.Settings),
		Store:    store,
		Tokens:   tokens,
		Settings: cfg.Settings,
		Metrics:  m,
	})

	mux := http.NewServeMux()

	// Register Connect services
	menuPath, menuHandler := apiconnect.NewMenuServiceHandler(menuSvc,
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.MetricsInterceptor(m),
		),
	)
	mux.Handle(menuPath, menuHandler)

	orderPath, orderHandler := apiconnect.NewOrderServiceHandler(orderSvc,
		connect.WithInterceptors(
			middleware.RequireSession(tokens, apiconnect.OrderServiceStartSessionProcedure),
			middleware.LoggingInterceptor(),
			middleware.MetricsInterceptor(m),
		),
	)
	mux.Handle(orderPath, orderHandler)

	if cfg.StaffAPIKey != "" {
		adminPath, adminHandler := apiconnect.NewAdminServiceHandler(service.NewAdminService(store),
			connect.WithInterceptors(
				middleware.RequireStaff(auth.NewStaffKey(cfg.StaffAPIKey)),
				middleware.LoggingInterceptor(),
				middleware.MetricsInterceptor(m),
			),
		)
		mux.Handle(adminPath, adminHandler)
	} else {
		slog.Warn("STAFF_API_KEY not set, admin service disabled")
	}

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go sweepSessions(ctx, sessions)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting",
		"address", cfg.Addr(),
		"tax_rate_percent", cfg.Settings.TaxRatePercent.String(),
		"currency", cfg.Settings.Currency,
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// sweepSessions drops expired sessions until ctx is done.
func sweepSessions(ctx context.Context, sessions *session.Store) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				slog.Debug("Swept expired sessions", "count", n, "live", sessions.Len())
			}
		}
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, X-Invalid-Field")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
