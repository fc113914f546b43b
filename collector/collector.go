// Package collector downloads per-user game exports into a PGN file.
package collector

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/colmdh/chessdata/lichess"
)

// Collector fetches each user's export in input order and appends it to a
// destination writer. One API failure skips that user only; the run always
// moves on to the next.
type Collector struct {
	client *lichess.Client
	log    *zap.Logger
}

// New creates a Collector using the given API client and logger.
func New(client *lichess.Client, log *zap.Logger) *Collector {
	return &Collector{client: client, log: log}
}

// Run exports games for every username, strictly sequentially, appending
// each successful stream to out in the order received. No deduplication
// happens here: reloading deduplicates on the game id. Only a write failure
// on out aborts the run.
func (c *Collector) Run(ctx context.Context, usernames []string, out io.Writer) error {
	for _, username := range usernames {
		c.log.Info("downloading games", zap.String("username", username))

		body, err := c.client.ExportGames(ctx, username)
		if err != nil {
			c.log.Warn("export failed, skipping user",
				zap.String("username", username),
				zap.Error(err))
			continue
		}

		_, copyErr := io.Copy(out, body)
		body.Close()
		if copyErr != nil {
			return fmt.Errorf("writing export for %q: %w", username, copyErr)
		}
		// Guarantee a record boundary between consecutive exports.
		if _, err := io.WriteString(out, "\n"); err != nil {
			return fmt.Errorf("writing export for %q: %w", username, err)
		}
	}
	return nil
}
