package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/outreachkit/contactscout/internal/app"
	"github.com/outreachkit/contactscout/internal/server"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	var (
		listenAddr   string
		configPath   string
		fetchTimeout time.Duration
		userAgent    string
		cacheDir     string
		verbose      bool
	)
	flag.StringVar(&listenAddr, "listen", "", "Listen address, e.g. :5000")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 0, "Timeout for fetching the target page")
	flag.StringVar(&userAgent, "fetch.ua", "", "User-Agent header for page fetches")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for the on-disk page cache (empty disables caching)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		ListenAddr:   listenAddr,
		FetchTimeout: fetchTimeout,
		UserAgent:    userAgent,
		CacheDir:     cacheDir,
		Verbose:      verbose,
	}

	// Precedence: flags, then env, then config file, then defaults.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)
	if err := app.ValidateConfig(cfg); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	srv := server.New(app.New(cfg))
	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: srv.Router()}

	go func() {
		log.Info().Str("addr", cfg.ListenAddr).Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
