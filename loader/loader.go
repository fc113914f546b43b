// Package loader streams PGN records into the relational schema.
package loader

import (
	"context"
	"fmt"
	"io"

	"github.com/colmdh/chessdata/models"
	"github.com/colmdh/chessdata/pgn"
	"github.com/colmdh/chessdata/store"
)

// progressEvery is how many processed games pass between progress reports.
const progressEvery = 1000

// Progress receives the running processed-game count. It is called every
// progressEvery games and once more with the final total.
type Progress func(processed int)

// Loader reads game records sequentially and upserts them. Openings and
// players are resolved to durable ids before the game row that references
// them is inserted; duplicate game ids are silently ignored, so loading the
// same file twice creates no new rows.
type Loader struct {
	store    *store.Store
	progress Progress
}

// New creates a Loader. progress may be nil.
func New(st *store.Store, progress Progress) *Loader {
	return &Loader{store: st, progress: progress}
}

// Load processes every record in r and returns the number processed.
// Scanner exhaustion (including a truncated trailing record) ends the loop
// cleanly; only read and database errors are returned.
func (l *Loader) Load(ctx context.Context, r io.Reader) (int, error) {
	sc := pgn.NewScanner(r)
	processed := 0

	for sc.Scan() {
		g := normalize(sc.Record())

		openingID, err := l.store.UpsertOpening(ctx, g.ECO, g.OpeningName)
		if err != nil {
			return processed, err
		}
		whiteID, err := l.store.UpsertPlayer(ctx, g.White, g.WhiteRating)
		if err != nil {
			return processed, err
		}
		blackID, err := l.store.UpsertPlayer(ctx, g.Black, g.BlackRating)
		if err != nil {
			return processed, err
		}

		err = l.store.InsertGame(ctx, &models.Game{
			GameID:      g.ExternalID,
			PlayedAt:    g.PlayedAt,
			WhiteID:     whiteID,
			BlackID:     blackID,
			WhiteRating: g.WhiteRating,
			BlackRating: g.BlackRating,
			Winner:      g.Winner,
			Termination: g.Termination,
			PlyCount:    g.PlyCount,
			OpeningID:   openingID,
			RatingDiff:  g.RatingDiff,
		})
		if err != nil {
			return processed, err
		}

		processed++
		if l.progress != nil && processed%progressEvery == 0 {
			l.progress(processed)
		}
	}
	if err := sc.Err(); err != nil {
		return processed, fmt.Errorf("reading pgn stream: %w", err)
	}

	if l.progress != nil {
		l.progress(processed)
	}
	return processed, nil
}
