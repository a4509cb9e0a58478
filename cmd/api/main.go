package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldbooking/internal/config"
	"fieldbooking/internal/database"
	jwtsvc "fieldbooking/internal/pkg/jwt"
	"fieldbooking/internal/repository"
	"fieldbooking/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if _, err := database.SeedTimeSlots(ctx, repository.NewTimeSlotRepository(db)); err != nil {
		log.Fatalf("seed time slots failed: %v", err)
	}

	var rdb *redis.Client
	if cfg.RateLimitConfig.Enabled {
		rdb = config.NewRedisClient(cfg.RedisConfig)
		if rdb == nil {
			log.Println("rate limiting disabled: redis unreachable")
		} else {
			defer rdb.Close()
		}
	}

	r := server.NewRouter(cfg, server.Deps{
		DB:    db,
		Redis: rdb,
		JWT:   jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("listening addr=%s env=%s", cfg.HTTPAddr, cfg.AppEnv)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	case sig := <-shutdown:
		log.Printf("shutdown signal received signal=%s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("graceful shutdown failed error=%q", err)
			_ = srv.Close()
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("server stopped")
}
