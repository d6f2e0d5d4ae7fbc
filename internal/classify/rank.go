package classify

import (
	"sort"
	"strings"

	"github.com/rptlabs/counterpose/internal/catalog"
	"github.com/rptlabs/counterpose/internal/domain"
)

// RankedPair is one persona pair scored against submitted reasoning.
type RankedPair struct {
	Pair        domain.PersonaPair `json:"personas"`
	Score       int                `json:"score"`
	Reason      string             `json:"reason"`
	Recommended bool               `json:"recommended"`
}

// matchedReasonPrefix labels the keyword list in a ranked pair's reason.
const matchedReasonPrefix = "Matched keywords: "

// generalFitReason is used when none of a pair's keywords matched.
const generalFitReason = "General domain fit"

// RankPairs scores every persona pair in the domain's catalog against text
// and returns them sorted by score descending, ties broken by catalog
// position. The result is always a permutation of the full catalog, and
// exactly the first entry is marked recommended.
func RankPairs(d domain.Domain, text string) []RankedPair {
	lower := strings.ToLower(text)
	entries := catalog.PairsFor(d)

	ranked := make([]RankedPair, 0, len(entries))
	for _, entry := range entries {
		var matched []string
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}

		reason := generalFitReason
		if len(matched) > 0 {
			reason = matchedReasonPrefix + strings.Join(matched, ", ")
		}
		ranked = append(ranked, RankedPair{
			Pair:   entry.Pair,
			Score:  len(matched),
			Reason: reason,
		})
	}

	// SliceStable preserves catalog order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > 0 {
		ranked[0].Recommended = true
	}
	return ranked
}
