package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Game is a single finished game keyed by its external Lichess id.
// Rows are immutable: reloading the same id is a no-op.
type Game struct {
	bun.BaseModel `bun:"table:games"`

	GameID      string    `bun:"game_id,pk" json:"gameID"`
	PlayedAt    time.Time `bun:"played_at,notnull" json:"playedAt"`
	WhiteID     int64     `bun:"white_id,notnull" json:"whiteID"`
	BlackID     int64     `bun:"black_id,notnull" json:"blackID"`
	WhiteRating int       `bun:"white_rating,notnull" json:"whiteRating"`
	BlackRating int       `bun:"black_rating,notnull" json:"blackRating"`
	Winner      string    `bun:"winner,notnull" json:"winner"`
	Termination string    `bun:"termination,notnull" json:"termination"`
	PlyCount    int       `bun:"ply_count,notnull" json:"plyCount"`
	OpeningID   int64     `bun:"opening_id,notnull" json:"openingID"`
	RatingDiff  int       `bun:"rating_diff,notnull" json:"ratingDiff"`

	White   *Player  `bun:"rel:belongs-to,join:white_id=player_id" json:"-"`
	Black   *Player  `bun:"rel:belongs-to,join:black_id=player_id" json:"-"`
	Opening *Opening `bun:"rel:belongs-to,join:opening_id=opening_id" json:"-"`
}
