// Package main is the entry point for the API server
//
//	@title			Forum Fingerprint API
//	@version		1.0
//	@description	Browser fingerprint matching and lifecycle management for a forum platform
//
//	@contact.name	API Support
//
//	@license.name	MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
//
//	@security			BearerAuth
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"forum-fingerprint-api/internal/config"
	"forum-fingerprint-api/internal/db"
	"forum-fingerprint-api/internal/esx"
	"forum-fingerprint-api/internal/fpx"
	"forum-fingerprint-api/internal/httpx"
	"forum-fingerprint-api/internal/httpx/kit"
	"forum-fingerprint-api/internal/logx"
	"forum-fingerprint-api/internal/mqx"
	"forum-fingerprint-api/internal/redisx"
	"forum-fingerprint-api/internal/server"

	_ "forum-fingerprint-api/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.String("log.format", cfg.Log.Format),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	// Auto-migrate
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	rdb, redisClose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer redisClose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, cfg.MQ.Exchange); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			defer func() { _ = pub.Close() }()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	providers := &httpx.Providers{Cfg: store, MQ: publisher, ES: esClient, RDB: rdb}
	httpx.Register(app, client, providers)

	// Retention sweeper
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	sweeper := fpx.NewSweeper(fpx.NewStore(client), rdb, fpx.SweeperConfig{
		MaxAge:     time.Duration(cfg.Fingerprint.MaxAgeDays) * 24 * time.Hour,
		MaxPerUser: cfg.Fingerprint.MaxPerUser,
		Interval:   time.Duration(cfg.Fingerprint.SweepHours) * time.Hour,
	})
	sweeper.Start(sweepCtx)

	// Watch for dynamic config changes (Apollo)
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["fp.max_age_days"] && newCfg.Fingerprint.MaxAgeDays < 0 {
			return fmt.Errorf("FP_MAX_AGE_DAYS cannot be negative")
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
		if changed["fp.max_age_days"] || changed["fp.max_per_user"] {
			mainLogger.Warn("fingerprint retention changed; applies on next sweeper restart")
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	sweepCancel()
	_ = app.Shutdown()
}
