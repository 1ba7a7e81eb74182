package main

import (
	"context"
	"flag"
	"time"

	"go.uber.org/zap"

	"pokedex/internal/pokemon"
	"pokedex/pkg/database"
	"pokedex/pkg/logger"
	"pokedex/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		panic(err)
	}

	var (
		dataIn = flag.String("data", cfg.DataPath, "source dataset (JSON or CSV)")
		dbPath = flag.String("db", cfg.DBPath, "SQLite snapshot path")
	)
	flag.Parse()

	log := logger.Must(cfg.LogLevel, "console")
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	catalog := pokemon.Load(*dataIn, log)
	if !catalog.Loaded() {
		log.Fatal("load failed", zap.Error(catalog.LoadErr()))
	}

	db, err := database.Open(database.Config{Path: *dbPath})
	if err != nil {
		log.Fatal("open db failed", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}

	if err := pokemon.SaveToDatabase(ctx, db, catalog.All()); err != nil {
		log.Fatal("save failed", zap.Error(err))
	}

	n, err := pokemon.CountSaved(ctx, db)
	if err != nil {
		log.Fatal("count failed", zap.Error(err))
	}
	log.Info("snapshot written", zap.Int("rows", n), zap.String("db", *dbPath))
}
