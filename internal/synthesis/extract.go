// Package synthesis extracts coarse metadata from free-text synthesis
// submissions. This is deliberate brittle substring matching, not parsing:
// any deviation from the exact markers silently falls through to the default
// branch. The extractor has no error path.
package synthesis

import (
	"strings"

	"github.com/rptlabs/counterpose/internal/domain"
)

const (
	markerConfidenceHigh   = "CONFIDENCE: High"
	markerConfidenceMedium = "CONFIDENCE: Medium"
	markerChangesYes       = "CHANGES NEEDED: Yes"

	sectionBlindSpots     = "BLIND SPOTS IDENTIFIED:"
	sectionContradictions = "CONTRADICTIONS FOUND:"
)

// Result holds the fields extracted from a synthesis submission.
type Result struct {
	Confidence     domain.Confidence
	ChangesNeeded  bool
	BlindSpots     []string
	Contradictions []string
}

// Extract scans text for the fixed confidence and changes-needed markers.
// Absent a High or Medium marker the confidence defaults to Low; absent the
// Yes marker, changes-needed defaults to false.
func Extract(text string) Result {
	res := Result{Confidence: domain.ConfidenceLow}

	switch {
	case strings.Contains(text, markerConfidenceHigh):
		res.Confidence = domain.ConfidenceHigh
	case strings.Contains(text, markerConfidenceMedium):
		res.Confidence = domain.ConfidenceMedium
	}

	res.ChangesNeeded = strings.Contains(text, markerChangesYes)
	res.BlindSpots = sectionLines(text, sectionBlindSpots)
	res.Contradictions = sectionLines(text, sectionContradictions)
	return res
}

// sectionLines returns the non-empty lines following a section header, up to
// the next all-caps header or the end of the text. Returns nil when the
// header is absent.
func sectionLines(text, header string) []string {
	idx := strings.Index(text, header)
	if idx < 0 {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(text[idx+len(header):], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			break
		}
		lines = append(lines, line)
	}
	return lines
}

// isSectionHeader reports whether a line opens another synthesis section:
// an all-caps label followed by a colon, like "CONFIDENCE:" or
// "RECOMMENDATION:". "END SYNTHESIS" is also treated as a terminator.
func isSectionHeader(line string) bool {
	if line == "END SYNTHESIS" {
		return true
	}
	label, _, found := strings.Cut(line, ":")
	if !found || label == "" {
		return false
	}
	if label != strings.ToUpper(label) {
		return false
	}
	return strings.ContainsFunc(label, func(r rune) bool {
		return r >= 'A' && r <= 'Z'
	})
}
