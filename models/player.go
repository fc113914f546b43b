package models

import "github.com/uptrace/bun"

// Player is one side of a game, created on first reference.
// HighestRating only ever goes up across loads.
type Player struct {
	bun.BaseModel `bun:"table:players"`

	PlayerID      int64  `bun:"player_id,pk,autoincrement" json:"playerID"`
	Username      string `bun:"username,notnull,unique" json:"username"`
	HighestRating int    `bun:"highest_rating,notnull,default:0" json:"highestRating"`
}
