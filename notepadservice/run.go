// Package notepadservice boots the notepad HTTP service.
package notepadservice

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/notepadhq/notepad-backend/internal/api"
	"github.com/notepadhq/notepad-backend/internal/assistant"
	"github.com/notepadhq/notepad-backend/internal/auth"
	"github.com/notepadhq/notepad-backend/internal/config"
	"github.com/notepadhq/notepad-backend/internal/platform/factory"
	"github.com/notepadhq/notepad-backend/internal/platform/logger"
)

// Run starts the notepad service HTTP server and blocks until shutdown or
// error. A non-empty dbDriverOverride replaces NOTEPAD_DB_DRIVER.
func Run(dbDriverOverride string) error {
	log := logger.New("notepad-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	if dbDriverOverride != "" {
		cfg.DBDriver = dbDriverOverride
		if err := cfg.ResolveDefaults(); err != nil {
			log.Error().Err(err).Msg("Invalid db-driver override")
			return err
		}
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("completion_url", cfg.CompletionURL).
		Msg("Notepad service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, err := factory.NewStore(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Store adapter unavailable")
		return err
	}

	verifier := auth.NewSupabaseVerifier(
		cfg.SupabaseURL,
		cfg.SupabaseServiceKey,
		time.Duration(cfg.AuthTimeoutSeconds)*time.Second,
	)
	completions := assistant.NewPollinationsClient(
		cfg.CompletionURL,
		time.Duration(cfg.CompletionTimeoutSeconds)*time.Second,
	)
	chat := assistant.New(st, completions, assistant.NewNaturalParser(), log)

	router := api.NewRouter(verifier, st, chat)

	if err := st.HealthPing(ctx); err != nil {
		log.Warn().Err(err).Msg("Store not reachable at startup")
	}

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second, // chat turns wait on the completion upstream
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
