package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	router "github.com/dkeye/callfocus/internal/adapters/http"
	"github.com/dkeye/callfocus/internal/adapters/kv"
	"github.com/dkeye/callfocus/internal/adapters/matrix"
	"github.com/dkeye/callfocus/internal/adapters/rtk"
	"github.com/dkeye/callfocus/internal/app"
	"github.com/dkeye/callfocus/internal/app/orch"
	"github.com/dkeye/callfocus/internal/config"
	"github.com/dkeye/callfocus/internal/core"
	"github.com/dkeye/callfocus/internal/logging"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config file (default config/config.<CONFIG_ENV>.yaml)")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Early logger so config.Load can report; replaced by logging.Setup.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logCloser := logging.Setup(cfg.Mode, cfg.Log)
	defer logCloser.Close()

	store, closeStore, err := newBindingStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init binding store")
	}
	defer closeStore()

	issuer, err := newIssuer(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire token issuance")
	}

	callConfig := cfg.CallConfig()
	r := router.SetupRouter(router.RouterConfig{
		Mode:       cfg.Mode,
		ServiceURL: cfg.ServiceURL(),
		CallConfig: callConfig,
		ReadLimit:  cfg.HTTP.ReadLimit,
	}, issuer)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Bool("calls_enabled", callConfig != nil).Msg("callfocus started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}

func newBindingStore(ctx context.Context, cfg *config.Config) (core.BindingStore, func(), error) {
	if cfg.Cache.Backend != config.CacheRedis {
		return kv.NewMemoryStore(), func() {}, nil
	}
	store, err := kv.NewRedisStore(kv.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.RequestTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	log.Info().Str("module", "kv").Str("addr", cfg.Redis.Addr).Msg("using redis binding store")
	return store, func() { _ = store.Close() }, nil
}

// newIssuer returns a nil issuer when calls are disabled.
func newIssuer(cfg *config.Config, store core.BindingStore) (router.TokenIssuer, error) {
	callConfig := cfg.CallConfig()
	if callConfig == nil {
		log.Warn().Str("module", "main").Msg("rtk credentials incomplete, calls disabled")
		return nil, nil
	}

	httpClient := &http.Client{Timeout: cfg.HTTP.RequestTimeout}

	backend, err := rtk.NewClient(rtk.ClientConfig{
		BaseURL:    cfg.RTK.BaseURL,
		HTTPClient: httpClient,
		Call:       *callConfig,
	})
	if err != nil {
		return nil, err
	}
	homeserver, err := matrix.NewClient(matrix.ClientConfig{
		HomeserverURL: cfg.HomeserverURL(),
		AccessToken:   cfg.Matrix.AccessToken,
		HTTPClient:    httpClient,
	})
	if err != nil {
		return nil, err
	}

	return &orch.Orchestrator{
		Identity:    homeserver,
		Directory:   homeserver,
		Meetings:    app.NewMeetingManager(backend, store, cfg.Cache.MeetingTTL),
		Credentials: app.NewCredentialIssuer(backend, *callConfig),
		Policy:      app.SimplePolicy{},
	}, nil
}
