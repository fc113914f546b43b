package models

import "github.com/uptrace/bun"

// Opening is an ECO-classified chess opening. Name tracks the latest value
// seen for the ECO code; Family is recorded once on first insert.
type Opening struct {
	bun.BaseModel `bun:"table:openings"`

	OpeningID int64  `bun:"opening_id,pk,autoincrement" json:"openingID"`
	ECO       string `bun:"eco,notnull,unique" json:"eco"`
	Name      string `bun:"name,notnull" json:"name"`
	Family    string `bun:"family,notnull" json:"family"`
}
