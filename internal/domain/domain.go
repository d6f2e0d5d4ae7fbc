// Package domain contains core domain types for the Counter-Pose workflow.
package domain

// Domain is a fixed topical category used to select a persona catalog.
type Domain string

const (
	SoftwareDevelopment Domain = "software_development"
	DigitalMarketing    Domain = "digital_marketing"
	VisualDesign        Domain = "visual_design"
	ProductStrategy     Domain = "product_strategy"
)

// FallbackDomain is returned by classification when no keyword matches.
const FallbackDomain = ProductStrategy

// Confidence is the assessment level extracted from a synthesis.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// PersonaPair is an ordered pair of two distinct persona names scoped to a
// domain. Catalog entries are never mutated.
type PersonaPair [2]string

// Contains reports whether name is one of the pair's personas.
func (p PersonaPair) Contains(name string) bool {
	return p[0] == name || p[1] == name
}

// Slice returns the pair as a slice for serialization.
func (p PersonaPair) Slice() []string {
	return []string{p[0], p[1]}
}
