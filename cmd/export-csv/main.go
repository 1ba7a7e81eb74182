package main

import (
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"pokedex/internal/pokemon"
	"pokedex/pkg/logger"
	"pokedex/pkg/utils"
)

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		panic(err)
	}

	var (
		dataIn     = flag.String("data", cfg.DataPath, "source dataset (JSON or CSV)")
		outPath    = flag.String("out", "data/pokemon.csv", "output CSV path")
		srcHeaders = flag.Bool("source-headers", false, "write dataset column names (#, Name, ...) so the file can be loaded as a source")
	)
	flag.Parse()

	log := logger.Must(cfg.LogLevel, "console")
	defer func() { _ = log.Sync() }()

	catalog := pokemon.Load(*dataIn, log)
	if !catalog.Loaded() {
		log.Fatal("load failed", zap.Error(catalog.LoadErr()))
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal("create output dir failed", zap.Error(err))
	}
	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal("create output failed", zap.Error(err))
	}
	defer f.Close()

	header := pokemon.CanonicalHeader
	if *srcHeaders {
		header = pokemon.SourceHeader
	}
	if err := pokemon.WriteCSV(f, catalog.All(), header); err != nil {
		log.Fatal("export failed", zap.Error(err))
	}

	log.Info("exported pokemon", zap.Int("count", catalog.Len()), zap.String("out", *outPath))
}
