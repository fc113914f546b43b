package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type openingCount struct {
	ECO    string `bun:"eco" json:"eco"`
	Name   string `bun:"name" json:"name"`
	Family string `bun:"family" json:"family"`
	Games  int    `bun:"games" json:"games"`
}

// Openings returns every opening with its game count, most played first.
func (h *Handler) Openings(c echo.Context) error {
	var rows []openingCount
	err := h.db.NewSelect().
		TableExpr("openings AS o").
		ColumnExpr("o.eco, o.name, o.family").
		ColumnExpr("count(g.game_id) AS games").
		Join("LEFT JOIN games AS g ON g.opening_id = o.opening_id").
		GroupExpr("o.opening_id, o.eco, o.name, o.family").
		OrderExpr("games DESC, o.eco").
		Scan(c.Request().Context(), &rows)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}
