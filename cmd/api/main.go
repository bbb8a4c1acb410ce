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

	"github.com/joho/godotenv"

	"github.com/example/english-for-kids/internal/api"
	"github.com/example/english-for-kids/internal/config"
	"github.com/example/english-for-kids/internal/dal/mongodb"
	"github.com/example/english-for-kids/internal/seed"
)

var (
	// Version is set via -ldflags at build time
	Version = "dev" //nolint:gochecknoglobals // must be global to be replaced at build time
	// BuildTime is set via -ldflags at build time
	BuildTime = "unknown" //nolint:gochecknoglobals // must be global to be replaced at build time
)

const (
	exitCodeOK int = iota
	exitCodeConfigParse
	exitCodeDBConnect
	exitCodeServerStart
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	go func() {
		<-sigs
		cancel()
	}()
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	_ = godotenv.Load()

	conf, err := config.NewAPI()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get config", "error", err) //nolint:sloglint // ignore
		return exitCodeConfigParse
	}
	log := mustLogger(conf.Dev)

	client, err := mongodb.Connect(ctx, conf.Mongo.URL)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to document store", "error", err)
		return exitCodeDBConnect
	}
	defer func() {
		dCtx, dCancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:mnd // ignore mnd
		defer dCancel()
		if dErr := client.Disconnect(dCtx); dErr != nil {
			log.ErrorContext(dCtx, "failed to disconnect from document store", "error", dErr)
		}
	}()

	store := mongodb.NewStore(client.Database(conf.Mongo.Name), log)
	router := api.NewRouter(ctx, conf, api.Dependencies{
		Store:  store,
		Seeder: seed.NewSeeder(store, log),
		Logger: log,
	})

	log.InfoContext(ctx, "starting api server",
		"version", Version,
		"build_time", BuildTime,
		"address", conf.Server.Addr,
	)

	server := &http.Server{
		ReadHeaderTimeout: conf.Server.ReadHeaderTimeout,
		Addr:              conf.Server.Addr,
		Handler:           router,
	}

	go func() {
		<-ctx.Done()
		cCtx, cCancel := context.WithTimeout(context.Background(), 15*time.Second) //nolint:mnd // ignore mnd
		defer cCancel()

		if sErr := server.Shutdown(cCtx); sErr != nil {
			log.ErrorContext(cCtx, "failed to shutdown api server", "error", sErr)
		}
	}()

	if err = server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "failed to start api server", "error", err)
		return exitCodeServerStart
	}

	log.InfoContext(ctx, "api server is stopped")

	return exitCodeOK
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
