// cmd/collect/main.go
// Downloads Lichess game history for a list of users into a PGN file.
//
// Usage:
//
//	LICHESS_API_TOKEN=... go run ./cmd/collect users.txt games.pgn
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/colmdh/chessdata/collector"
	"github.com/colmdh/chessdata/config"
	"github.com/colmdh/chessdata/lichess"
	applog "github.com/colmdh/chessdata/logger"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatalf("usage: %s <user-list> <output-pgn>", os.Args[0])
	}
	userListPath, outputPath := os.Args[1], os.Args[2]

	cfg := config.LoadCollect()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// Configuration precondition: no token, no run. Checked before any
	// network activity.
	if cfg.LichessToken == "" {
		logger.Fatal("LICHESS_API_TOKEN not set in environment or .env file")
	}

	usernames, err := readUsernames(userListPath)
	if err != nil {
		logger.Fatal("read user list", zap.String("path", userListPath), zap.Error(err))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		logger.Fatal("create output file", zap.String("path", outputPath), zap.Error(err))
	}
	defer out.Close()

	c := collector.New(lichess.New(cfg.LichessToken), logger)
	if err := c.Run(context.Background(), usernames, out); err != nil {
		logger.Fatal("collect failed", zap.Error(err))
	}

	logger.Info("saved PGN", zap.String("path", outputPath))
}

func readUsernames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var usernames []string
	for _, line := range strings.Split(string(data), "\n") {
		if u := strings.TrimSpace(line); u != "" {
			usernames = append(usernames, u)
		}
	}
	return usernames, nil
}
