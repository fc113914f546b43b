package loader

import (
	"strconv"
	"strings"
	"time"

	"github.com/colmdh/chessdata/pgn"
)

// Defaults applied to absent or unparsable headers.
const (
	defaultECO      = "?"
	defaultOpening  = "Unknown"
	defaultUsername = "?"
	defaultDate     = "1970.01.01"
	defaultTime     = "00:00:00"
)

const timestampLayout = "2006.01.02 15:04:05"

// game is a fully-normalized record, ready for the store. Every field has a
// defined default so a sparse header set still produces a loadable game.
type game struct {
	ExternalID  string
	PlayedAt    time.Time
	White       string
	Black       string
	WhiteRating int
	BlackRating int
	Winner      string
	Termination string
	PlyCount    int
	ECO         string
	OpeningName string
	RatingDiff  int
}

// normalize maps a scanned record to a typed game. It is a pure
// transformation; all I/O-free policy lives here.
//
// RatingDiff is computed after defaulting, so a single absent rating yields
// a diff equal to the present one. That mirrors the source data pipeline
// this schema was built for and is asserted by tests rather than corrected.
func normalize(rec pgn.Record) game {
	whiteRating := headerInt(rec, "WhiteElo")
	blackRating := headerInt(rec, "BlackElo")

	return game{
		ExternalID:  externalID(rec.Header("Site", "")),
		PlayedAt:    playedAt(rec.Header("UTCDate", defaultDate), rec.Header("UTCTime", defaultTime)),
		White:       rec.Header("White", defaultUsername),
		Black:       rec.Header("Black", defaultUsername),
		WhiteRating: whiteRating,
		BlackRating: blackRating,
		Winner:      winner(rec.Header("Result", "*")),
		Termination: rec.Header("Termination", "?"),
		PlyCount:    rec.PlyCount,
		ECO:         rec.Header("ECO", defaultECO),
		OpeningName: rec.Header("Opening", defaultOpening),
		RatingDiff:  abs(whiteRating - blackRating),
	}
}

// externalID is the last path segment of the Site header, the durable
// Lichess game id.
func externalID(site string) string {
	return site[strings.LastIndex(site, "/")+1:]
}

func playedAt(date, clock string) time.Time {
	t, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.UTC)
	if err != nil {
		t, _ = time.ParseInLocation(timestampLayout, defaultDate+" "+defaultTime, time.UTC)
	}
	return t
}

// winner is a literal three-way substitution, not a general result parser:
// any other value (e.g. "*") passes through unchanged.
func winner(result string) string {
	switch result {
	case "1-0":
		return "white"
	case "0-1":
		return "black"
	case "1/2-1/2":
		return "draw"
	}
	return result
}

func headerInt(rec pgn.Record, key string) int {
	n, err := strconv.Atoi(rec.Header(key, "0"))
	if err != nil {
		return 0
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
