package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/colmdh/chessdata/config"
	"github.com/colmdh/chessdata/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, model := range []interface{}{
		(*models.Player)(nil),
		(*models.Opening)(nil),
	} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	// Games reference players twice (white and black) and one opening.
	_, err := db.NewCreateTable().Model((*models.Game)(nil)).IfNotExists().
		ForeignKey(`("white_id") REFERENCES "players" ("player_id")`).
		ForeignKey(`("black_id") REFERENCES "players" ("player_id")`).
		ForeignKey(`("opening_id") REFERENCES "openings" ("opening_id")`).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("creating table for %T: %w", (*models.Game)(nil), err)
	}

	return nil
}
