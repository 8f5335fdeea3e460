package fuzzy

// DefaultMaxResults is the number of items Rank returns when the caller
// passes a limit of 0.
var DefaultMaxResults = 9

// Source is an abstract list of candidate strings.
type Source interface {
	// Len is the number of candidates.
	Len() int
	// String is the candidate at position i.
	String(i int) string
}

// StringSource adapts a string slice to the Source interface.
type StringSource []string

// Len implements Source.
func (s StringSource) Len() int {
	return len(s)
}

// String implements Source.
func (s StringSource) String(i int) string {
	return s[i]
}

// Rank matches abbrev against every candidate in src and returns the
// matching candidates as Items, best first. Candidates that don't contain
// abbrev as a subsequence are dropped. At most limit items are returned;
// a limit of 0 means DefaultMaxResults, a negative limit means no limit.
func Rank(m *Matcher, src Source, abbrev string, limit int) Items {
	items := make(Items, 0, src.Len())

	for i := 0; i < src.Len(); i++ {
		title := src.String(i)
		r := m.Match(title, abbrev)
		if r.Score == 0 {
			continue
		}
		items = append(items, Item{
			Title:        title,
			Autocomplete: title,
			Score:        r.Score,
			Pieces:       r.Pieces,
		})
	}

	SortByScore(items)

	if limit == 0 {
		limit = DefaultMaxResults
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	dlog.Printf("ranked %d candidates for %q, kept %d", src.Len(), abbrev, len(items))
	return items
}

// RankStrings ranks candidates against abbrev using the default weights and
// result limit.
func RankStrings(candidates []string, abbrev string) Items {
	return Rank(NewMatcher(DefaultWeights()), StringSource(candidates), abbrev, 0)
}
