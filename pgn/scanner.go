// Package pgn splits a PGN stream into per-game records at the header level.
//
// Records are consumed lazily and exactly once, in file order. Only the tag
// pairs and a ply count are extracted; move text is never validated, so
// exports produced without moves (a lone result token) and hand-written
// files both scan cleanly.
package pgn

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var tagPairRe = regexp.MustCompile(`^\[(\w+)\s+"(.*)"\]\s*$`)

// Record is one scanned game: its tag pairs and the number of half-moves
// found in the move text (0 when the export carries no moves).
type Record struct {
	Headers  map[string]string
	PlyCount int
}

// Header returns the named tag value, or def when the tag is absent or empty.
func (r Record) Header(key, def string) string {
	if v, ok := r.Headers[key]; ok && v != "" {
		return v
	}
	return def
}

// Scanner reads games from a PGN stream in the bufio.Scanner idiom:
//
//	sc := pgn.NewScanner(f)
//	for sc.Scan() {
//		rec := sc.Record()
//		...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// The sequence is finite and non-restartable; Scan returns false at end of
// input or on a read error (reported by Err).
type Scanner struct {
	lines   *bufio.Scanner
	rec     Record
	pending string
	hasPend bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewScanner(r)}
}

// Scan advances to the next game. Stray text before the first tag pair is
// skipped; a truncated trailing game with at least one tag pair is still
// returned.
func (s *Scanner) Scan() bool {
	headers := make(map[string]string)
	var movetext strings.Builder
	inMoves := false

	for {
		line, ok := s.next()
		if !ok {
			break
		}
		if m := tagPairRe.FindStringSubmatch(line); m != nil {
			if inMoves {
				// Tag pair opens the next game; keep it for the next Scan.
				s.pending, s.hasPend = line, true
				break
			}
			headers[m[1]] = m[2]
			continue
		}
		if strings.TrimSpace(line) == "" {
			if inMoves {
				break
			}
			continue
		}
		if len(headers) == 0 {
			// Garbage before any tag pair.
			continue
		}
		inMoves = true
		movetext.WriteString(line)
		movetext.WriteByte('\n')
	}

	if len(headers) == 0 {
		return false
	}
	s.rec = Record{Headers: headers, PlyCount: countPlies(movetext.String())}
	return true
}

// Record returns the game read by the last successful Scan.
func (s *Scanner) Record() Record {
	return s.rec
}

// Err returns the first read error encountered, if any.
func (s *Scanner) Err() error {
	return s.lines.Err()
}

func (s *Scanner) next() (string, bool) {
	if s.hasPend {
		s.hasPend = false
		return s.pending, true
	}
	if s.lines.Scan() {
		return s.lines.Text(), true
	}
	return "", false
}

// countPlies counts mainline SAN tokens: move numbers, results, NAGs,
// comments and variations are all excluded.
func countPlies(movetext string) int {
	plies := 0
	inComment := false
	varDepth := 0
	for _, tok := range strings.Fields(movetext) {
		if inComment {
			if strings.HasSuffix(tok, "}") {
				inComment = false
			}
			continue
		}
		if strings.HasPrefix(tok, "{") {
			if !strings.HasSuffix(tok, "}") {
				inComment = true
			}
			continue
		}
		if strings.HasPrefix(tok, "(") {
			varDepth++
			continue
		}
		if strings.HasPrefix(tok, ")") || strings.HasSuffix(tok, ")") {
			if varDepth > 0 {
				varDepth--
			}
			continue
		}
		if varDepth > 0 {
			continue
		}
		if isMoveNumber(tok) || isResult(tok) || strings.HasPrefix(tok, "$") {
			continue
		}
		plies++
	}
	return plies
}

func isMoveNumber(tok string) bool {
	trimmed := strings.TrimRight(tok, ".")
	if trimmed == tok || trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isResult(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}
