package pgn

import (
	"strings"
	"testing"
)

const twoGames = `[Event "Rated Blitz game"]
[Site "https://lichess.org/abcd1234"]
[White "alice"]
[Black "bob"]
[Result "1-0"]
[UTCDate "2023.05.01"]
[UTCTime "18:04:22"]
[WhiteElo "2200"]
[BlackElo "2100"]
[ECO "B90"]
[Opening "Sicilian Defense: Najdorf"]
[Termination "Normal"]

1-0

[Event "Rated Rapid game"]
[Site "https://lichess.org/wxyz9876"]
[White "bob"]
[Black "alice"]
[Result "1/2-1/2"]
[ECO "A20"]
[Opening "English Opening"]

1/2-1/2
`

func TestScanTwoGames(t *testing.T) {
	sc := NewScanner(strings.NewReader(twoGames))

	if !sc.Scan() {
		t.Fatal("expected first game")
	}
	first := sc.Record()
	if got := first.Headers["Site"]; got != "https://lichess.org/abcd1234" {
		t.Errorf("first Site = %q", got)
	}
	if got := first.Headers["Opening"]; got != "Sicilian Defense: Najdorf" {
		t.Errorf("first Opening = %q", got)
	}
	if first.PlyCount != 0 {
		t.Errorf("moveless export should have 0 plies, got %d", first.PlyCount)
	}

	if !sc.Scan() {
		t.Fatal("expected second game")
	}
	second := sc.Record()
	if got := second.Headers["White"]; got != "bob" {
		t.Errorf("second White = %q", got)
	}

	if sc.Scan() {
		t.Error("expected end of stream after two games")
	}
	if err := sc.Err(); err != nil {
		t.Errorf("unexpected scanner error: %v", err)
	}
}

func TestScanWithMovetext(t *testing.T) {
	input := `[Event "Casual game"]
[Site "https://lichess.org/moves001"]
[Result "0-1"]

1. e4 e5 2. Nf3 { a comment } Nc6 3. Bb5 a6 0-1
`
	sc := NewScanner(strings.NewReader(input))
	if !sc.Scan() {
		t.Fatal("expected a game")
	}
	if got := sc.Record().PlyCount; got != 6 {
		t.Errorf("PlyCount = %d, want 6", got)
	}
}

func TestScanMovetextDirectlyIntoNextHeaders(t *testing.T) {
	// No blank line between one game's movetext and the next game's tags.
	input := `[Site "https://lichess.org/one"]

1. d4 d5 *
[Site "https://lichess.org/two"]

*
`
	sc := NewScanner(strings.NewReader(input))
	if !sc.Scan() {
		t.Fatal("expected first game")
	}
	if got := sc.Record().Headers["Site"]; got != "https://lichess.org/one" {
		t.Errorf("first Site = %q", got)
	}
	if got := sc.Record().PlyCount; got != 2 {
		t.Errorf("first PlyCount = %d, want 2", got)
	}
	if !sc.Scan() {
		t.Fatal("expected second game")
	}
	if got := sc.Record().Headers["Site"]; got != "https://lichess.org/two" {
		t.Errorf("second Site = %q", got)
	}
}

func TestScanSkipsLeadingGarbage(t *testing.T) {
	input := "not a tag pair\n\n[Site \"https://lichess.org/ok\"]\n\n*\n"
	sc := NewScanner(strings.NewReader(input))
	if !sc.Scan() {
		t.Fatal("expected a game after leading garbage")
	}
	if got := sc.Record().Headers["Site"]; got != "https://lichess.org/ok" {
		t.Errorf("Site = %q", got)
	}
}

func TestScanTruncatedTrailingGame(t *testing.T) {
	// Stream ends mid-record: headers only, no movetext, no final newline.
	input := "[Site \"https://lichess.org/cut\"]\n[White \"alice\"]"
	sc := NewScanner(strings.NewReader(input))
	if !sc.Scan() {
		t.Fatal("truncated record with tag pairs should still be returned")
	}
	if got := sc.Record().Headers["White"]; got != "alice" {
		t.Errorf("White = %q", got)
	}
	if sc.Scan() {
		t.Error("expected end of stream")
	}
}

func TestScanEmptyInput(t *testing.T) {
	sc := NewScanner(strings.NewReader(""))
	if sc.Scan() {
		t.Error("empty input should yield no games")
	}
}

func TestHeaderDefaults(t *testing.T) {
	rec := Record{Headers: map[string]string{"ECO": "B90", "Opening": ""}}
	if got := rec.Header("ECO", "?"); got != "B90" {
		t.Errorf("present header = %q", got)
	}
	if got := rec.Header("Opening", "Unknown"); got != "Unknown" {
		t.Errorf("empty header should default, got %q", got)
	}
	if got := rec.Header("Termination", "?"); got != "?" {
		t.Errorf("absent header should default, got %q", got)
	}
}

func TestCountPlies(t *testing.T) {
	cases := []struct {
		name     string
		movetext string
		want     int
	}{
		{"empty", "", 0},
		{"result only", "*", 0},
		{"plain moves", "1. e4 e5 2. Nf3 Nc6 1-0", 4},
		{"odd plies", "1. e4 e5 2. Nf3 0-1", 3},
		{"comment spanning tokens", "1. e4 { best by test } e5 *", 2},
		{"variation skipped", "1. e4 ( 1. d4 d5 ) e5 *", 2},
		{"nag skipped", "1. e4 $1 e5 1/2-1/2", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := countPlies(tc.movetext); got != tc.want {
				t.Errorf("countPlies(%q) = %d, want %d", tc.movetext, got, tc.want)
			}
		})
	}
}
