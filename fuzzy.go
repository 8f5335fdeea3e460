// Package fuzzy scores how well a short typed abbreviation matches a longer
// candidate string, for ranking autocomplete and launcher suggestions. The
// scorer considers every occurrence of each abbreviation character, weights
// matches at word boundaries above mid-word matches, and reports which
// characters of the winning alternative matched so callers can mark them up
// for display.
package fuzzy

import (
	"io"
	"log"
	"os"
)

var dlog = log.New(os.Stderr, "[fuzzy] ", log.LstdFlags)

// IsDebugging indicates whether debug logging is enabled.
func IsDebugging() bool {
	return os.Getenv("FUZZY_DEBUG") == "1"
}

func init() {
	if !IsDebugging() {
		dlog.SetOutput(io.Discard)
		dlog.SetFlags(0)
	}
}
