// Package matching scores how well an academy's tags fit a learner's
// preferences.
package matching

import (
	"math"
	"sort"
	"strings"
)

const (
	minScore       = 50
	maxScore       = 95
	sparsePenalty  = 20
	sparseTagCount = 3
	maxReasons     = 3
)

type MatchResult struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

type contribution struct {
	order  int
	value  float64
	reason string
}

// CalculateMatchScore returns a 0..100 score for academyTags against
// learnerTags and up to three human readable reasons.
//
// Each answered category contributes weight*credit, where single-select
// categories earn full credit on any match and multi-select categories earn
// matched/selected. The ratio over answered weight is clamped to [50,95] when
// nonzero, then academies with fewer than three tags lose 20 points.
func CalculateMatchScore(learnerTags, academyTags []string) MatchResult {
	if len(learnerTags) == 0 || len(academyTags) == 0 {
		return MatchResult{Score: 0, Reasons: []string{}}
	}

	academy := make(map[string]struct{}, len(academyTags))
	for _, t := range academyTags {
		academy[t] = struct{}{}
	}

	selected := groupByCategory(learnerTags)

	var answered, earned float64
	var contribs []contribution

	for i, cat := range categories {
		picks := selected[cat.Key]
		if len(picks) == 0 {
			continue
		}
		answered += float64(cat.Weight)

		var matched []string
		for _, code := range picks {
			if _, ok := academy[code]; ok {
				matched = append(matched, code)
			}
		}
		if len(matched) == 0 {
			continue
		}

		credit := 1.0
		if cat.Multi() {
			credit = float64(len(matched)) / float64(len(picks))
		}
		value := float64(cat.Weight) * credit
		earned += value

		labels := make([]string, len(matched))
		for j, code := range matched {
			labels[j] = Label(code)
		}
		contribs = append(contribs, contribution{
			order:  i,
			value:  value,
			reason: cat.Label + ": " + strings.Join(labels, ", "),
		})
	}

	if answered == 0 {
		return MatchResult{Score: 0, Reasons: []string{}}
	}

	score := int(math.Round(earned / answered * 100))
	if score > 0 {
		score = clamp(score, minScore, maxScore)
	}
	if len(academy) < sparseTagCount {
		score = max(score-sparsePenalty, 0)
	}

	sort.SliceStable(contribs, func(a, b int) bool {
		if contribs[a].value != contribs[b].value {
			return contribs[a].value > contribs[b].value
		}
		return contribs[a].order < contribs[b].order
	})

	reasons := make([]string, 0, maxReasons)
	for _, c := range contribs {
		if len(reasons) == maxReasons {
			break
		}
		reasons = append(reasons, c.reason)
	}

	return MatchResult{Score: score, Reasons: reasons}
}

// groupByCategory buckets known-category codes, deduplicated and in
// dictionary order so reason text is stable regardless of input order.
func groupByCategory(codes []string) map[string][]string {
	seen := make(map[string]struct{}, len(codes))
	out := make(map[string][]string)

	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}

		cat, _, ok := SplitTag(code)
		if !ok {
			continue
		}
		if _, known := categoryByKey[cat]; !known {
			continue
		}
		out[cat] = append(out[cat], code)
	}

	for cat := range out {
		codes := out[cat]
		sort.SliceStable(codes, func(i, j int) bool {
			return orderOf(codes[i]) < orderOf(codes[j])
		})
	}
	return out
}

func orderOf(code string) int {
	if o, ok := tagOrder[code]; ok {
		return o
	}
	return math.MaxInt
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
