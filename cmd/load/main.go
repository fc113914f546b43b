// cmd/load/main.go
// Parses a PGN file and loads it into the PostgreSQL warehouse.
//
// Usage:
//
//	go run ./cmd/load games.pgn
package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/colmdh/chessdata/config"
	bundb "github.com/colmdh/chessdata/db"
	"github.com/colmdh/chessdata/loader"
	applog "github.com/colmdh/chessdata/logger"
	"github.com/colmdh/chessdata/store"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <pgn-file>", os.Args[0])
	}
	pgnPath := os.Args[1]

	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db := bundb.Setup(cfg)
	defer db.Close()

	ctx := context.Background()
	if err := bundb.CreateTables(ctx, db); err != nil {
		logger.Fatal("create tables failed", zap.Error(err))
	}

	f, err := os.Open(pgnPath)
	if err != nil {
		logger.Fatal("open pgn file", zap.String("path", pgnPath), zap.Error(err))
	}
	defer f.Close()

	l := loader.New(store.New(db), func(processed int) {
		logger.Info("games processed", zap.Int("count", processed))
	})

	total, err := l.Load(ctx, f)
	if err != nil {
		logger.Fatal("load failed", zap.Int("processed", total), zap.Error(err))
	}
	logger.Info("finished", zap.Int("total", total))
}
