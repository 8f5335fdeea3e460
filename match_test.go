package fuzzy

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 1.0, w.ContinueMatch)
	assert.Equal(t, 0.9, w.StartWord)
	assert.Equal(t, 0.8, w.InWord)
	assert.Equal(t, 0.999, w.SkippedPenalty)
	assert.Equal(t, 0.9999, w.CaseMismatchPenalty)
	assert.Equal(t, 0.99999, w.TrailingPenalty)
	assert.Equal(t, "\\/-_+.# \t\"@[({&", w.Delimiters)
	assert.NoError(t, w.Validate())
}

func TestWeightsValidate(t *testing.T) {
	w := DefaultWeights()
	w.StartWord = 0
	assert.Error(t, w.Validate())

	w = DefaultWeights()
	w.SkippedPenalty = 1.1
	assert.Error(t, w.Validate())

	w = DefaultWeights()
	w.Delimiters = ""
	assert.Error(t, w.Validate())
}

func TestMatch_EmptyAbbreviation(t *testing.T) {
	// An empty abbreviation matches anything, decayed per trailing
	// character so shorter candidates score higher.
	assert.Equal(t, 1.0, Match("", "").Score)

	prev := 1.0
	for _, s := range []string{"a", "ab", "abc", "abcdefghij"} {
		r := Match(s, "")
		assert.Equal(t, math.Pow(0.99999, float64(len(s))), r.Score)
		assert.Less(t, r.Score, prev)
		assert.Greater(t, r.Score, 0.0)
		assert.Equal(t, []Piece{{Plain: s}}, r.Pieces)
		prev = r.Score
	}
}

func TestMatch_ExactMatchScoresOne(t *testing.T) {
	for _, s := range []string{"a", "foo", "foo_bar", "SpecialElite", "x y z"} {
		r := Match(s, s)
		assert.Equal(t, 1.0, r.Score, "Match(%q, %q)", s, s)
		assert.Equal(t, s, r.String())
	}
}

func TestMatch_NoMatch(t *testing.T) {
	r := Match("abc", "d")
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, []Piece{{Plain: "abc"}}, r.Pieces)

	// A single unmatchable character anywhere zeroes the whole match.
	assert.Equal(t, 0.0, Match("foo_bar", "fxb").Score)
	assert.Equal(t, 0.0, Match("", "a").Score)
}

func TestMatch_OrderSensitivity(t *testing.T) {
	assert.Greater(t, Match("abc", "ac").Score, 0.0)
	assert.Equal(t, 0.0, Match("abc", "ca").Score)
}

func TestMatch_WordBoundaryBonus(t *testing.T) {
	assert.Greater(t, Match("foo_bar", "b").Score, Match("foobar", "b").Score)
}

func TestMatch_EveryDelimiterStartsAWord(t *testing.T) {
	for _, d := range DefaultWeights().Delimiters {
		boundary := Match("x"+string(d)+"y", "y").Score
		midWord := Match("xzy", "y").Score
		assert.Greater(t, boundary, midWord, "delimiter %q", d)
	}
}

func TestMatch_CamelCaseBoundary(t *testing.T) {
	// "SE" hits two word starts; "pl" hits interior characters.
	assert.Greater(t, Match("SpecialElite", "SE").Score, Match("SpecialElite", "pl").Score)
}

func TestMatch_CaseMismatchPenalty(t *testing.T) {
	assert.Greater(t, Match("HTML", "HM").Score, Match("HTML", "hm").Score)

	// Exact factors: first char continues the match, folded case costs
	// 0.9999, and the trailing "tml" decays by 0.99999 per character.
	r := Match("html", "H")
	require.InDelta(t, 0.9999*math.Pow(0.99999, 3), r.Score, 1e-12)
}

func TestMatch_ScoreComposition(t *testing.T) {
	// Mid-word match: weight 0.8, three skipped characters, two trailing.
	r := Match("foobar", "b")
	require.InDelta(t, 0.8*math.Pow(0.999, 3)*math.Pow(0.99999, 2), r.Score, 1e-12)

	// Boundary match: weight 0.9, four skipped characters, two trailing.
	r = Match("foo_bar", "b")
	require.InDelta(t, 0.9*math.Pow(0.999, 4)*math.Pow(0.99999, 2), r.Score, 1e-12)
}

func TestMatch_TrailingPaddingNeverHelps(t *testing.T) {
	tests := []struct {
		text   string
		abbrev string
	}{
		{"foo", "f"},
		{"foo_bar", "fb"},
		{"abc", "abc"},
		{"SpecialElite", "SE"},
	}

	for _, tc := range tests {
		base := Match(tc.text, tc.abbrev).Score
		padded := Match(tc.text+"x", tc.abbrev).Score
		assert.GreaterOrEqual(t, base, padded, "Match(%q, %q)", tc.text, tc.abbrev)
	}
}

func TestMatch_BacktrackingBeatsGreedy(t *testing.T) {
	// A greedy scan would take the mid-word "b" in "ab" and stop; the
	// winning alternative is the word-start "b" in "_bar".
	r := Match("ab_bar", "b")
	assert.Equal(t, "ab_[b]ar", PlainRenderer{Open: "[", Close: "]"}.Render(r))
}

func TestMatch_PiecesCoverInput(t *testing.T) {
	tests := []struct {
		text   string
		abbrev string
	}{
		{"", ""},
		{"foobar", ""},
		{"foobar", "b"},
		{"foo_bar", "fb"},
		{"SpecialElite", "SE"},
		{"abc", "xyz"},
		{"banana", "ana"},
	}

	for _, tc := range tests {
		r := Match(tc.text, tc.abbrev)
		assert.Equal(t, tc.text, r.String(), "Match(%q, %q)", tc.text, tc.abbrev)
		assert.GreaterOrEqual(t, r.Score, 0.0)
		assert.LessOrEqual(t, r.Score, 1.0)
	}
}

func TestMatch_LeftmostWinsOnTie(t *testing.T) {
	// With every weight flattened to 1 all occurrences score identically,
	// so the first-encountered candidate must win.
	w := Weights{
		ContinueMatch:       1,
		StartWord:           1,
		InWord:              1,
		SkippedPenalty:      1,
		CaseMismatchPenalty: 1,
		TrailingPenalty:     1,
		Delimiters:          " ",
	}
	r := NewMatcher(w).Match("xbyb", "b")
	assert.Equal(t, 1.0, r.Score)
	assert.Equal(t, "x[b]yb", PlainRenderer{Open: "[", Close: "]"}.Render(r))
}

func TestMatch_CustomDelimiters(t *testing.T) {
	// With ':' as the only delimiter, "x:y" gets the word-start weight
	// and "x_y" does not.
	w := DefaultWeights()
	w.Delimiters = ":"
	m := NewMatcher(w)
	assert.Greater(t, m.Match("x:y", "y").Score, m.Match("x_y", "y").Score)
}

func TestMatch_PathologicalInputTerminates(t *testing.T) {
	// Without memoization this repeated-character input explodes
	// combinatorially; with it the table stays polynomial.
	text := strings.Repeat("a", 40)
	abbrev := strings.Repeat("a", 20)

	r := Match(text, abbrev)
	assert.Greater(t, r.Score, 0.0)
	assert.LessOrEqual(t, r.Score, 1.0)
	assert.Equal(t, text, r.String())
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("foobar", "fbr"))
	assert.True(t, Matches("foobar", ""))
	assert.True(t, Matches("FooBar", "fb"))
	assert.False(t, Matches("foobar", "rx"))
	assert.False(t, Matches("", "a"))
}
