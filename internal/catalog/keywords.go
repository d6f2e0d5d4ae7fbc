// Package catalog holds the static domain, persona, and keyword tables that
// drive classification and ranking. The tables are pure configuration data:
// they are defined once at startup and never mutated, and changing them must
// never require touching classifier or ranker logic.
package catalog

import (
	"github.com/rptlabs/counterpose/internal/domain"
)

// Domains enumerates every known domain in a fixed order. Classification
// tie-breaks resolve by position in this slice, so the order is part of the
// contract.
var Domains = []domain.Domain{
	domain.SoftwareDevelopment,
	domain.DigitalMarketing,
	domain.VisualDesign,
	domain.ProductStrategy,
}

// DomainKeywords maps each domain to the keywords used for detection.
// Matching is case-insensitive substring presence, one point per keyword.
var DomainKeywords = map[domain.Domain][]string{
	domain.SoftwareDevelopment: {
		"code", "programming", "develop", "software", "bug", "feature",
		"app", "application", "engineer", "function", "class", "library",
		"API", "interface", "database", "algorithm", "architecture",
		"server", "client", "testing", "deployment", "DevOps", "git",
		"GitHub", "authentication", "JWT", "tokens", "encryption",
		"security", "vulnerability", "auth", "login", "session", "oauth",
		"API key", "SSL", "TLS", "HTTPS", "implement", "privacy",
		"compliance",
	},
	domain.DigitalMarketing: {
		"marketing", "campaign", "audience", "conversion", "social media",
		"SEO", "PPC", "content", "email", "analytics", "ROI", "CPC",
		"CPA", "funnel", "leads", "engagement", "traffic", "CTR",
		"advertising", "brand", "competitors", "strategy", "targeting",
		"segmentation",
	},
	domain.VisualDesign: {
		"design", "layout", "visual", "color", "typography", "UI", "UX",
		"user interface", "user experience", "wireframe", "prototype",
		"mockup", "branding", "logo", "illustration", "graphic",
		"aesthetic", "responsive", "mobile", "desktop", "theme",
		"style guide", "grid", "material design", "design system",
		"custom design", "design patterns", "component library",
		"design tokens",
	},
	domain.ProductStrategy: {
		"product", "market", "strategy", "roadmap", "customer", "MVP",
		"feature", "release", "launch", "pricing", "competitive",
		"analysis", "persona", "user story", "agile", "scrum", "sprint",
		"backlog", "stakeholder", "KPI", "metrics", "validation",
		"feedback", "iteration",
	},
}
