package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect-n/internal/config"
	"github.com/iamasit07/connect-n/internal/console"
	"github.com/iamasit07/connect-n/internal/logger"
	"github.com/iamasit07/connect-n/internal/service/cleanup"
	"github.com/iamasit07/connect-n/internal/service/game"
	transportHttp "github.com/iamasit07/connect-n/internal/transport/http"
	"github.com/iamasit07/connect-n/internal/transport/http/middleware"
	"github.com/iamasit07/connect-n/internal/transport/websocket"
	"github.com/iamasit07/connect-n/pkg/auth"
	"github.com/iamasit07/connect-n/pkg/uid"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine, the environment and defaults still apply
	envErr := godotenv.Load()

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, config.Usage())
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer log.Sync()

	if envErr != nil {
		log.Debug("no .env file loaded", zap.Error(envErr))
	}

	rules, err := cfg.Rules()
	if err != nil {
		return err
	}

	session, err := game.NewSession(rules, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch.Enabled {
		shutdown, err := startWatchServer(ctx, cfg.Watch, session, log)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	defer prompter.Close()

	result, err := game.Run(ctx, session, prompter, console.NewRenderer(os.Stdout))
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, console.ErrNoInput) {
			fmt.Fprintln(os.Stderr, "\nGame abandoned.")
			return nil
		}
		return err
	}

	log.Info("game finished",
		zap.String("game_id", session.GameID),
		zap.Bool("draw", result.Draw),
		zap.Int("moves", result.Moves),
	)
	return nil
}

// startWatchServer exposes the session read only over HTTP and websocket.
// The returned func shuts the server down.
func startWatchServer(ctx context.Context, cfg config.WatchConfig, session *game.Session, log *zap.Logger) (func(), error) {
	secret := cfg.Secret
	if secret == "" {
		secret = uid.GenerateSecret()
		log.Debug("WATCH_SECRET not set, generated one for this run")
	}

	issuer := auth.NewTokenIssuer(secret, cfg.TokenTTL)
	token, err := issuer.GenerateWatchToken(session.GameID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue watch token")
	}

	hub := websocket.NewHub(log)
	session.Subscribe(hub)

	wsHandler := websocket.NewHandler(hub, session, 2*cfg.SweepInterval, middleware.OriginAllowed(cfg.AllowedOrigins), log)
	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		Watch:          transportHttp.NewWatchHandler(session, hub),
		Auth:           middleware.WatchAuth(issuer, session.GameID, int(cfg.TokenTTL.Seconds()), log),
		WebSocket:      wsHandler.HandleWatch,
		AllowedOrigins: cfg.AllowedOrigins,
		Log:            log,
	})

	workerCtx, cancelWorker := context.WithCancel(ctx)
	workerDone := cleanup.NewWorker(hub, cfg.SweepInterval, log).Start(workerCtx)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("watch server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("watch server error", zap.Error(err))
		}
	}()

	fmt.Fprintf(os.Stderr, "Spectators can watch at http://localhost:%s/api/watch/board?token=%s\n", cfg.Port, token)

	return func() {
		cancelWorker()
		<-workerDone

		hub.CloseAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("watch server forced to shutdown", zap.Error(err))
		}
		log.Info("watch server exited gracefully")
	}, nil
}
