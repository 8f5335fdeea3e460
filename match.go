package fuzzy

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Weights holds the scoring constants used by a Matcher. The three match
// weights (ContinueMatch, StartWord, InWord) establish the primary ordering
// of results; the three penalties are tie-breakers with strictly smaller
// effects. Keeping each constant an order of magnitude closer to 1 than the
// last guarantees a penalty can never invert an ordering established by a
// weight difference for inputs shorter than a few hundred characters.
type Weights struct {
	// ContinueMatch weights a character matched at the very start of the
	// remaining text.
	ContinueMatch float64

	// StartWord weights a character matched at a word boundary: directly
	// after one of Delimiters, or at a lower-to-upper case transition.
	StartWord float64

	// InWord weights a character matched anywhere else.
	InWord float64

	// SkippedPenalty is applied once per character skipped before a match.
	SkippedPenalty float64

	// CaseMismatchPenalty is applied when a character only matched after
	// case folding.
	CaseMismatchPenalty float64

	// TrailingPenalty is applied once per unmatched character left after
	// the abbreviation is exhausted.
	TrailingPenalty float64

	// Delimiters is the set of characters that start a new word.
	Delimiters string
}

// DefaultWeights returns the canonical scoring constants.
func DefaultWeights() Weights {
	return Weights{
		ContinueMatch:       1,
		StartWord:           0.9,
		InWord:              0.8,
		SkippedPenalty:      0.999,
		CaseMismatchPenalty: 0.9999,
		TrailingPenalty:     0.99999,
		Delimiters:          "\\/-_+.# \t\"@[({&",
	}
}

// Validate returns an error if any weight is outside (0, 1] or the
// delimiter set is empty.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"continueMatch", w.ContinueMatch},
		{"startWord", w.StartWord},
		{"inWord", w.InWord},
		{"skippedPenalty", w.SkippedPenalty},
		{"caseMismatchPenalty", w.CaseMismatchPenalty},
		{"trailingPenalty", w.TrailingPenalty},
	}

	for _, f := range fields {
		if f.value <= 0 || f.value > 1 {
			return fmt.Errorf("weight %s is %v, must be in (0, 1]", f.name, f.value)
		}
	}

	if w.Delimiters == "" {
		return fmt.Errorf("delimiter set is empty")
	}

	return nil
}

// A Piece is one segment of a match rendering: a run of unmatched text
// followed by a single matched character. The final piece of a result may
// have an empty Matched when unmatched text trails the last match.
type Piece struct {
	Plain   string
	Matched string
}

// A Result describes how well an abbreviation matched a string. Score is in
// [0, 1]; 1 is a perfect match and 0 means no subsequence match exists.
// Pieces covers the matched string exactly once, in order, identifying which
// characters matched; renderers turn it into display text.
type Result struct {
	Score  float64
	Pieces []Piece
}

// String reassembles the original matched string from the result's pieces.
func (r Result) String() string {
	var b strings.Builder
	for _, p := range r.Pieces {
		b.WriteString(p.Plain)
		b.WriteString(p.Matched)
	}
	return b.String()
}

// A Matcher scores abbreviations against candidate strings using a fixed
// set of weights. Matchers are stateless and safe for concurrent use.
type Matcher struct {
	weights Weights
}

// NewMatcher returns a Matcher that scores with the given weights.
func NewMatcher(weights Weights) *Matcher {
	return &Matcher{weights: weights}
}

// Weights returns the matcher's scoring constants.
func (m *Matcher) Weights() Weights {
	return m.weights
}

// Match scores abbrev against text using the default weights.
func Match(text, abbrev string) Result {
	return NewMatcher(DefaultWeights()).Match(text, abbrev)
}

// Matches returns true if every character of abbrev occurs in text in
// order, ignoring case. An empty abbrev matches anything.
func Matches(text, abbrev string) bool {
	return Match(text, abbrev).Score > 0
}

// Match scores how well abbrev matches text. Every occurrence of each
// abbreviation character is considered, and the best-scoring alternative
// wins; a greedy left-to-right scan would miss higher-scoring occurrences
// later in the string. A score of 0 means abbrev is not a subsequence of
// text. The result's pieces identify the matched characters of the winning
// alternative.
func (m *Matcher) Match(text, abbrev string) Result {
	s := scorer{
		weights: m.weights,
		memo:    make(map[memoKey]Result),
	}
	return s.score(text, abbrev)
}

// support ---------------------------------------------------------------

// scorer holds the transient state of one top-level Match call. The
// recursion only ever descends into suffixes of the original text and
// abbreviation, so a (suffix length, suffix length) pair identifies a
// subproblem; memoizing on it bounds the otherwise exponential backtracking
// to one evaluation per pair.
type scorer struct {
	weights Weights
	memo    map[memoKey]Result
}

type memoKey struct {
	text   int
	abbrev int
}

func (s *scorer) score(text, abbrev string) Result {
	// An exhausted abbreviation matches, decayed slightly for each
	// unmatched trailing character so shorter candidates rank first.
	if abbrev == "" {
		return Result{
			Score:  math.Pow(s.weights.TrailingPenalty, float64(utf8.RuneCountInString(text))),
			Pieces: plainPieces(text),
		}
	}

	key := memoKey{len(text), len(abbrev)}
	if r, ok := s.memo[key]; ok {
		return r
	}

	ch, size := utf8.DecodeRuneInString(abbrev)
	rest := abbrev[size:]

	// Score 0 is absorbing: one unmatchable character zeroes the whole
	// match through every enclosing call.
	best := Result{Pieces: plainPieces(text)}
	found := false

	for _, sp := range Splits(text, ch) {
		sub := s.score(sp.After, rest)

		score := sub.Score * s.positionWeight(sp)
		if sp.Matched != ch {
			score *= s.weights.CaseMismatchPenalty
		}
		score *= math.Pow(s.weights.SkippedPenalty, float64(utf8.RuneCountInString(sp.Before)))

		// Strict > keeps the leftmost occurrence on exact score ties.
		if !found || score > best.Score {
			pieces := make([]Piece, 0, len(sub.Pieces)+1)
			pieces = append(pieces, Piece{Plain: sp.Before, Matched: string(sp.Matched)})
			pieces = append(pieces, sub.Pieces...)
			best = Result{Score: score, Pieces: pieces}
			found = true
		}
	}

	s.memo[key] = best
	return best
}

// positionWeight rates where a match landed: start of the remaining text,
// start of a word, or mid-word.
func (s *scorer) positionWeight(sp Split) float64 {
	if sp.Before == "" {
		return s.weights.ContinueMatch
	}

	prev, _ := utf8.DecodeLastRuneInString(sp.Before)
	if strings.ContainsRune(s.weights.Delimiters, prev) {
		return s.weights.StartWord
	}
	if unicode.IsLower(prev) && unicode.IsUpper(sp.Matched) {
		return s.weights.StartWord
	}

	return s.weights.InWord
}

func plainPieces(text string) []Piece {
	if text == "" {
		return nil
	}
	return []Piece{{Plain: text}}
}
