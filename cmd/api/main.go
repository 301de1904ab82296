package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-pos/internal/archive"
	"github.com/BruksfildServices01/barber-pos/internal/audit"
	"github.com/BruksfildServices01/barber-pos/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-pos/internal/db"
	"github.com/BruksfildServices01/barber-pos/internal/events"
	"github.com/BruksfildServices01/barber-pos/internal/exchange"
	"github.com/BruksfildServices01/barber-pos/internal/lock"
	"github.com/BruksfildServices01/barber-pos/internal/logging"
	"github.com/BruksfildServices01/barber-pos/internal/routes"
	"github.com/BruksfildServices01/barber-pos/internal/timezone"
	"github.com/BruksfildServices01/barber-pos/internal/validators"
)

func main() {
	cfg, ok := loadConfig(os.Stderr)
	if !ok {
		os.Exit(1)
	}

	log := logging.New(cfg.Log)

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}

	if err := validators.Register(); err != nil {
		log.Error("register validators", "error", err)
		os.Exit(1)
	}

	// --------------------------------------------------
	// Booking lock: Redis when configured, in-process otherwise
	// --------------------------------------------------
	var locker lock.Locker = lock.NewMemory()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			log.Error("redis unreachable", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		locker = lock.NewRedis(rdb, cfg.Redis.LockTTL, log)
		log.Info("booking lock on redis", "addr", cfg.Redis.Addr)
	}

	// --------------------------------------------------
	// Audit sinks
	// --------------------------------------------------
	sinks := []audit.Sink{audit.New(db)}
	if cfg.AMQP.URL != "" {
		publisher, err := events.NewPublisher(cfg.AMQP, log)
		if err != nil {
			log.Warn("event publishing disabled", "error", err)
		} else {
			defer publisher.Close()
			sinks = append(sinks, publisher)
		}
	}
	dispatcher := audit.NewDispatcher(log, sinks...)

	// --------------------------------------------------
	// Exchange rate
	// --------------------------------------------------
	tracker := exchange.NewTracker(cfg.Rate.StaleAfter)
	refresher := exchange.NewRefresher(exchange.NewBCVSource(cfg.Rate), tracker, cfg.Rate.Timeout, log)
	if err := refresher.Start(cfg.Rate.RefreshSpec); err != nil {
		log.Error("schedule rate refresh", "error", err)
		os.Exit(1)
	}

	var store archive.Store
	if cfg.ArchiveEnabled() {
		store = archive.NewS3Store(cfg.Archive, log)
	}

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:        db,
		Config:    cfg,
		Log:       log,
		Clock:     timezone.NewShopClock(cfg.Shop.Timezone),
		Locker:    locker,
		Audit:     dispatcher,
		Tracker:   tracker,
		Refresher: refresher,
		Archive:   store,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown", "error", err)
	}

	refresher.Stop()
	dispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// loadConfig reports configuration errors on w, before the configured logger
// exists.
func loadConfig(w io.Writer) (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		logging.NewWithWriter(w, config.LogConfig{}).Error("load config", "error", err)
		return nil, false
	}
	return cfg, true
}
