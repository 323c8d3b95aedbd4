package loader

import "strings"

// Example-pair file format, fixed and line-oriented:
//
//	Q: How many customers do we have?
//	SQL: SELECT COUNT(*) FROM customers;
//
// A pair is a `Q:` line followed by a `SQL:` line; blank lines and any other
// lines between them are tolerated. A file may contain any number of pairs.
// A `Q:` with no matching `SQL:` before the next `Q:` (or end of file), or a
// `SQL:` with no preceding `Q:`, is one malformed pair; it is counted and
// the rest of the file still parses.

// Pair is one question/SQL training example.
type Pair struct {
	Question string
	SQL      string
}

// ParseExamples parses question/SQL pairs out of an examples file. It
// returns the well-formed pairs and the number of malformed entries.
func ParseExamples(content string) ([]Pair, int) {
	var (
		pairs     []Pair
		malformed int
		question  string
		pending   bool
	)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Q:"):
			if pending {
				// Previous question never got its SQL.
				malformed++
			}
			question = strings.TrimSpace(strings.TrimPrefix(line, "Q:"))
			pending = true
		case strings.HasPrefix(line, "SQL:"):
			sql := strings.TrimSpace(strings.TrimPrefix(line, "SQL:"))
			if !pending || question == "" || sql == "" {
				malformed++
				pending = false
				question = ""
				continue
			}
			pairs = append(pairs, Pair{Question: question, SQL: sql})
			pending = false
			question = ""
		}
	}

	if pending {
		malformed++
	}

	return pairs, malformed
}
