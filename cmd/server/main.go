// Command server runs the match tracker REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkoval/fifa-rivals/internal/api/handlers"
	"github.com/pkoval/fifa-rivals/internal/cache"
	"github.com/pkoval/fifa-rivals/internal/catalog"
	"github.com/pkoval/fifa-rivals/internal/config"
	"github.com/pkoval/fifa-rivals/internal/service/achievements"
	"github.com/pkoval/fifa-rivals/internal/service/matches"
	"github.com/pkoval/fifa-rivals/internal/store"
	"github.com/pkoval/fifa-rivals/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	log.Info().
		Str("backend", cfg.Storage.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting match tracker")

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
		}
		log.Info().Str("path", cfg.Catalog.Path).Msg("Loaded catalog overrides")
	}

	st, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer closeStore()

	var statsCache cache.Cache
	if cfg.Cache.Enabled {
		redisCache, err := cache.NewRedisCache(&cfg.Cache.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer redisCache.Close()
		statsCache = redisCache
		log.Info().Str("host", cfg.Cache.Redis.Host).Msg("Stats cache enabled")
	}

	achievementService := achievements.NewService(st, cat, log)
	matchService := matches.NewService(st, achievementService, cat, statsCache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second, log)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := handlers.NewHandler(matchService, achievementService, log)
	handler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
	log.Info().Msg("Server stopped")
}

// openStore builds the configured persistence backend. The returned func
// releases backend resources on shutdown.
func openStore(cfg *config.Config, log *logger.Logger) (store.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		gs, err := store.OpenPostgres(&cfg.Database.Postgres, log)
		if err != nil {
			return nil, nil, err
		}
		return gs, func() {
			if err := gs.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}, nil
	default:
		js, err := store.NewJSONStore(cfg.Storage.JSONPath, log)
		if err != nil {
			return nil, nil, err
		}
		return js, func() {}, nil
	}
}
