package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"yuletide/internal/cache"
	"yuletide/internal/config"
	"yuletide/internal/repo"
	"yuletide/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg    config.Config
	store  *repo.SQLiteGiftRepo
	redis  *redis.Client
	gifts  *service.GiftService
	router *gin.Engine
}

// New opens the store, prepares schema and seed data, and builds the router.
// The store lifecycle is open -> ensure schema -> seed if empty -> serve -> Close.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	store, err := repo.NewSQLiteGiftRepo(cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	a.store = store

	var giftCache *cache.GiftCache
	if cfg.Redis.Enabled() {
		rdb, err := newRedis(ctx, cfg.Redis)
		if err != nil {
			store.Close()
			return nil, err
		}
		a.redis = rdb
		giftCache = cache.NewGiftCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	a.gifts = service.NewGiftService(store, giftCache)
	if _, err := a.gifts.Prepare(ctx, repo.SeedGifts); err != nil {
		a.Close()
		return nil, err
	}

	a.router = NewRouter(cfg, a.gifts)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// DBPath is the data file the store was opened on.
func (a *App) DBPath() string {
	return a.store.Path()
}

// Close releases Redis and then the store handle.
func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			slog.Warn("redis close", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			return fmt.Errorf("close store: %w", err)
		}
		slog.Info("database closed")
	}
	return nil
}

func newRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// NewRouter builds the gin engine serving svc.
func NewRouter(cfg config.Config, svc *service.GiftService) *gin.Engine {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.HTTP.Origins(),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, svc)
	return r
}
