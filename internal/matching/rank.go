package matching

import "sort"

type Candidate struct {
	ID   int64
	Tags []string
}

type Ranked struct {
	ID      int64
	Score   int
	Reasons []string
}

// Rank scores every candidate, drops zero scores and orders the rest by score
// descending, then id ascending.
func Rank(learnerTags []string, candidates []Candidate) []Ranked {
	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		res := CalculateMatchScore(learnerTags, c.Tags)
		if res.Score == 0 {
			continue
		}
		ranked = append(ranked, Ranked{ID: c.ID, Score: res.Score, Reasons: res.Reasons})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}
