package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_chart/internal/app/di"
	"stock_chart/internal/platform/db"
	infraredis "stock_chart/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}
	cfg := di.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	dbCfg := db.LoadConfigFromEnv()
	gdb, err := db.Open(dbCfg)
	if err != nil {
		log.Fatal(err)
	}
	if dbCfg.RunMigrations {
		if err := di.EnsureDefaultSymbols(ctx, gdb); err != nil {
			log.Fatal(err)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if rcfg := infraredis.LoadConfig(); !rcfg.Enabled() {
		log.Println("[WARN] REDIS_HOST is not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(ctx, rcfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	app, err := di.NewApp(gdb, rdb, cfg)
	if err != nil {
		log.Fatal(err)
	}

	sched, err := di.NewScheduler(cfg, app.Seed)
	if err != nil {
		log.Fatal(err)
	}
	if sched != nil {
		sched.Start()
		defer sched.Stop()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Admin routes will reject every request.")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
