package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"manrelbdg_backend/internals/configs"
	database "manrelbdg_backend/internals/databases"
	snapshotScheduler "manrelbdg_backend/internals/features/dashboard/scheduler"
	helperOSS "manrelbdg_backend/internals/helpers/oss"
	routes "manrelbdg_backend/internals/route"
	"manrelbdg_backend/internals/seeds"
)

// go run . [serve|migrate|seed]
func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	log := configs.NewLogger(cfg)
	defer func() { _ = log.Sync() }()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := database.TunePool(db, cfg); err != nil {
		log.Fatal("tune pool", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	switch cmd {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
		log.Info("✅ migrate selesai")
	case "seed":
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := seeds.RunAllSeeds(ctx, db, log); err != nil {
			log.Fatal("seed", zap.Error(err))
		}
	case "serve":
		if err := serve(cfg, db, log); err != nil {
			log.Fatal("server", zap.Error(err))
		}
	default:
		fmt.Fprintf(os.Stderr, "perintah tidak dikenal %q (serve | migrate | seed)\n", cmd)
		os.Exit(2)
	}
}

func serve(cfg *configs.Config, db *gorm.DB, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database.WarmUpQueries(db, log)

	store, err := helperOSS.NewStorage(ctx, cfg.Storage)
	if err != nil {
		// foto opsional: server tetap jalan tanpa endpoint upload
		log.Warn("storage tidak tersedia, upload foto dimatikan", zap.Error(err))
		store = nil
	}

	app := routes.NewApp(log)
	routes.SetupRoutes(app, routes.Deps{DB: db, Cfg: cfg, Log: log, Store: store, Started: time.Now()})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// ⏱ scheduler setelah DB siap
	schedulerDone := snapshotScheduler.StartSnapshotScheduler(ctx, db, cfg.SnapshotInterval, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("✅ Listening", zap.String("port", cfg.Port), zap.String("client", cfg.Client.Client.Code))
		errCh <- app.Listen("0.0.0.0:" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// graceful shutdown
	log.Info("🛑 shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = app.ShutdownWithContext(shutdownCtx)
	<-schedulerDone
	return err
}
