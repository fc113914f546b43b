// Package store implements the warehouse upserts the loader depends on.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/colmdh/chessdata/models"
)

// Store wraps a bun.DB with the upsert operations used during loading.
type Store struct {
	db *bun.DB
}

// New creates a Store over the given database connection.
func New(db *bun.DB) *Store {
	return &Store{db: db}
}

// UpsertPlayer inserts the player or, on a username conflict, keeps the
// greatest of the stored and incoming rating. highest_rating never
// decreases. Returns the durable player id.
func (s *Store) UpsertPlayer(ctx context.Context, username string, rating int) (int64, error) {
	p := &models.Player{Username: username, HighestRating: rating}
	_, err := s.db.NewInsert().Model(p).
		On("CONFLICT (username) DO UPDATE").
		Set("highest_rating = CASE WHEN EXCLUDED.highest_rating > highest_rating THEN EXCLUDED.highest_rating ELSE highest_rating END").
		Returning("player_id").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("upsert player %q: %w", username, err)
	}
	return p.PlayerID, nil
}

// UpsertOpening inserts the opening or, on an ECO conflict, overwrites the
// name with the latest value. The family is derived once on first insert
// and never recomputed. Returns the durable opening id.
func (s *Store) UpsertOpening(ctx context.Context, eco, name string) (int64, error) {
	o := &models.Opening{ECO: eco, Name: name, Family: Family(name)}
	_, err := s.db.NewInsert().Model(o).
		On("CONFLICT (eco) DO UPDATE").
		Set("name = EXCLUDED.name").
		Returning("opening_id").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("upsert opening %q: %w", eco, err)
	}
	return o.OpeningID, nil
}

// InsertGame inserts the game, silently ignoring a duplicate external id.
// Game rows are immutable once inserted.
func (s *Store) InsertGame(ctx context.Context, g *models.Game) error {
	_, err := s.db.NewInsert().Model(g).
		On("CONFLICT (game_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert game %q: %w", g.GameID, err)
	}
	return nil
}

// Family derives an opening family from its display name: everything before
// the first colon, or the first whitespace-delimited word when there is none.
//
//	"Sicilian Defense: Najdorf" -> "Sicilian Defense"
//	"English Opening"           -> "English"
func Family(name string) string {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[:i]
	}
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}
