package main

import (
	"context"

	"github.com/resepkita/go-resep-backend/config"
	"github.com/resepkita/go-resep-backend/internal/bootstrap"
	"github.com/resepkita/go-resep-backend/pkg/logger"
)

const serviceName = "resep-backend"

func main() {
	logger.Init()
	defer logger.Log.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(context.Background(), bootstrap.DBOptions{DSN: cfg.Supabase.DBDSN})
	if err != nil {
		logger.Sugar.Fatalf("database: %v", err)
	}
	defer db.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		DB:          db,
	})

	logger.Sugar.Infow("listening", "port", cfg.Server.Port, "env", cfg.App.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Sugar.Fatalf("server: %v", err)
	}
}
