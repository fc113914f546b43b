package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/colmdh/chessdata/models"
)

const defaultLimit = 50

// Players returns the top players ordered by highest rating.
func (h *Handler) Players(c echo.Context) error {
	limit := defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	var players []models.Player
	err := h.db.NewSelect().Model(&players).
		Order("highest_rating DESC").
		Limit(limit).
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, players)
}

// PlayerGames returns one player's games, newest first.
func (h *Handler) PlayerGames(c echo.Context) error {
	username := c.Param("username")

	player := &models.Player{}
	err := h.db.NewSelect().Model(player).
		Where("username = ?", username).
		Scan(c.Request().Context())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "unknown player")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var games []models.Game
	err = h.db.NewSelect().Model(&games).
		Where("white_id = ? OR black_id = ?", player.PlayerID, player.PlayerID).
		Order("played_at DESC").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, games)
}
