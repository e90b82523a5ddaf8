package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dishpatch/internal/commons"
	"dishpatch/internal/config"
	"dishpatch/internal/dish"
	"dishpatch/internal/infrastructure/idgen"
	"dishpatch/internal/infrastructure/logger"
	"dishpatch/internal/order"
	"dishpatch/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	ids := idgen.NewUUID()

	dishCtrl := dish.NewModule(ids, zapLogger)
	orderCtrl := order.NewModule(ids, zapLogger)

	router := server.NewRouter(dishCtrl, orderCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}
