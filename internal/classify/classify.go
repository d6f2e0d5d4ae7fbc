// Package classify implements keyword-based domain classification and
// persona pair ranking. Both are deterministic, pure in-memory text scans:
// each keyword scores by case-insensitive substring presence, at most one
// point per keyword regardless of how often it repeats.
package classify

import (
	"strings"

	"github.com/rptlabs/counterpose/internal/catalog"
	"github.com/rptlabs/counterpose/internal/domain"
)

// Classify maps free text to the domain whose keyword table matches it most.
// Ties resolve to the earlier domain in catalog.Domains. When nothing
// matches, the fallback domain is returned; there is no error path.
func Classify(text string) domain.Domain {
	lower := strings.ToLower(text)

	best := domain.FallbackDomain
	bestCount := 0
	for _, d := range catalog.Domains {
		count := 0
		for _, kw := range catalog.DomainKeywords[d] {
			if strings.Contains(lower, strings.ToLower(kw)) {
				count++
			}
		}
		if count > bestCount {
			best = d
			bestCount = count
		}
	}
	return best
}
