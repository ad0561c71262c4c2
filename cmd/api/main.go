package main

import (
	"log"
	"net/http"

	goredis "github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"medical-practice/internal/adapters/auth/jwtauth"
	rediscache "medical-practice/internal/adapters/cache/redis"
	"medical-practice/internal/adapters/cep"
	"medical-practice/internal/adapters/export/xlsx"
	pg "medical-practice/internal/adapters/storage/postgres"
	"medical-practice/internal/config"
	"medical-practice/internal/platform/logger"
	"medical-practice/internal/router"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    "medical-practice",
	})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	opts := router.Options{
		AddressLookup: cep.NewClient(cfg.CEPBaseURL),
		Exporter:      xlsx.NewWeeklyExporter(),
		Logger:        zl,
	}

	// Sin secret queda el modo dev: X-Debug-User-ID en vez de tokens.
	if cfg.JWT.Secret != "" {
		provider := jwtauth.New(cfg.JWT.Secret, cfg.JWT.TTL)
		opts.AuthVerifier = provider
		opts.TokenIssuer = provider
	} else {
		zl.Warn("JWT_SECRET vacío, autenticación en modo dev")
	}

	if cfg.DatabaseDSN != "" {
		db, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			zl.Fatal("abrir postgres", zap.Error(err))
		}
		defer db.Close()
		opts.DB = db
	}

	if cfg.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		opts.ReportsCache = rediscache.NewReportsCache(client)
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	zl.Info("starting server", zap.String("addr", cfg.HTTP.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zl.Fatal("server error", zap.Error(err))
	}
}
