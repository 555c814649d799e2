package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/tkloetzk/mealplanner-sub001/cmd/config"
	migration "github.com/tkloetzk/mealplanner-sub001/cmd/database/migrate"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils/logger"
)

func main() {
	cfg, err := utils.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		zl.Fatal("migrate database", zap.Error(err))
	}
	zl.Info("database migration complete")

	app, err := config.NewApp(cfg, db, zl)
	if err != nil {
		zl.Fatal("build app", zap.Error(err))
	}

	addr := ":" + cfg.AppPort
	zl.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := app.Listen(addr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
