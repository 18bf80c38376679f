package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"imposter_server/internal/category"
	"imposter_server/internal/config"
	"imposter_server/internal/db"
	"imposter_server/internal/game"
	httpServer "imposter_server/internal/http"
	"imposter_server/internal/http/handlers"
	"imposter_server/internal/http/middleware"
	"imposter_server/internal/logger"
	"imposter_server/internal/registry"
	"imposter_server/internal/repository"
	"imposter_server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
)

const version = "1.2.0"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	// Optional Postgres: analytics game log only.
	var dbPool *pgxpool.Pool
	var gameLog *repository.GameLogRepository
	if cfg.DatabaseURL != "" {
		dbPool = db.Connect(cfg.DatabaseURL)
		defer dbPool.Close()
		gameLog = repository.NewGameLogRepository(dbPool)
	}

	// Optional Redis: shared game registry and rate limiter backend.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			logger.Warn("redis unreachable, falling back to in-memory state", "error", err)
			rdb = nil
		}
	}

	var reg registry.Registry
	if rdb != nil {
		middleware.UseRedis(rdb)
		reg = registry.NewRedis(rdb, cfg.GameTTL)
		logger.Info("using redis game registry", "ttl", cfg.GameTTL)
	} else {
		mem := registry.NewMemory(cfg.GameTTL)
		mem.StartSweeper()
		reg = mem
		logger.Info("using in-memory game registry", "ttl", cfg.GameTTL)
	}

	categories := category.NewStore()
	factory := game.NewFactory(categories)
	games := service.NewGameService(factory, reg, gameLog)

	h := handlers.NewHandler(categories, games)
	health := handlers.NewHealthHandler(dbPool, rdb, version)

	r := gin.Default()

	// CORS: the client runs inside an app webview or Expo dev server.
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, h, health, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
