package main

import (
	"log"
	"log/slog"
	"net/http"
	"time"

	"bookhive/internal/app"
	"bookhive/internal/config"
	"bookhive/internal/server"
	"bookhive/internal/storage"
	"bookhive/internal/store"
	"bookhive/internal/util"
)

func main() {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.InitLogger(cfg.LogLevel)

	sessionTTL, err := config.ParseSessionTTL(cfg.SessionTTL)
	if err != nil {
		log.Fatalf("failed to parse session ttl: %v", err)
	}
	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = config.DevJWTSecret
		slog.Warn("jwtSecret not configured, using development default")
	}

	trusted, err := util.NewTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("failed to parse trusted proxies: %v", err)
	}

	st, err := store.NewGormStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	sessions := store.NewJWTSessionStore(jwtSecret, sessionTTL)

	var files app.FileArchive
	if cfg.MinioEndpoint != "" {
		archive, err := storage.NewArchive(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("failed to init archive: %v", err)
		}
		files = archive
	}

	appCore := app.New(st, sessions, files)

	httpServer, err := server.New(server.Config{
		App:                      appCore,
		CORSOrigin:               cfg.CORSOrigin,
		TrustedProxies:           trusted,
		RedisAddr:                cfg.RedisAddr,
		RedisPassword:            cfg.RedisPassword,
		SignupRateLimitPerMinute: cfg.SignupRateLimitPerMinute,
		SigninRateLimitPerMinute: cfg.SigninRateLimitPerMinute,
	})
	if err != nil {
		log.Fatalf("failed to init server: %v", err)
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      httpServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("api server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "err", err)
	}
}
