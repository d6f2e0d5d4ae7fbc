package catalog

import (
	"strings"

	"github.com/rptlabs/counterpose/internal/domain"
)

// PairEntry is one persona pair in a domain's catalog together with the
// keywords used to rank it against submitted reasoning. Catalog position is
// the ranking tie-break, so entries are kept in ordered slices.
type PairEntry struct {
	Pair     domain.PersonaPair
	Keywords []string
}

// PersonaPairs maps each domain to its ordered pair catalog.
var PersonaPairs = map[domain.Domain][]PairEntry{
	domain.SoftwareDevelopment: {
		{
			Pair: domain.PersonaPair{"Developer", "Security Expert"},
			Keywords: []string{
				"security", "vulnerability", "auth", "encryption",
				"breach", "privacy", "compliance",
			},
		},
		{
			Pair: domain.PersonaPair{"Frontend Engineer", "UX Designer"},
			Keywords: []string{
				"ui", "interface", "user experience", "frontend",
				"design", "usability", "accessibility",
			},
		},
		{
			Pair: domain.PersonaPair{"Backend Engineer", "DevOps Engineer"},
			Keywords: []string{
				"infrastructure", "deployment", "server", "database",
				"scaling", "devops", "backend",
			},
		},
		{
			Pair: domain.PersonaPair{"Performance Engineer", "Maintainability Advocate"},
			Keywords: []string{
				"performance", "optimization", "speed", "maintainability",
				"refactor", "clean code", "technical debt",
			},
		},
	},
	domain.DigitalMarketing: {
		{
			Pair: domain.PersonaPair{"Creative Director", "Analytics Specialist"},
			Keywords: []string{
				"brand", "creative", "storytelling", "analytics",
				"metrics", "campaign", "creative direction",
			},
		},
		{
			Pair: domain.PersonaPair{"Brand Strategist", "Conversion Optimizer"},
			Keywords: []string{
				"brand strategy", "positioning", "conversion", "funnel",
				"optimization", "cro",
			},
		},
		{
			Pair: domain.PersonaPair{"Social Media Expert", "Growth Hacker"},
			Keywords: []string{
				"social media", "followers", "engagement", "platform",
				"twitter", "x.com", "instagram", "growth",
			},
		},
		{
			Pair: domain.PersonaPair{"Content Creator", "Performance Marketer"},
			Keywords: []string{
				"content", "organic", "paid", "advertising",
				"content marketing", "performance",
			},
		},
		{
			Pair: domain.PersonaPair{"B2B Marketer", "B2C Marketer"},
			Keywords: []string{
				"b2b", "b2c", "enterprise", "consumer", "business",
				"audience",
			},
		},
		{
			Pair: domain.PersonaPair{"Landing Page Expert", "SEO Specialist"},
			Keywords: []string{
				"landing page", "seo", "search", "website",
				"page optimization", "organic traffic",
			},
		},
	},
	domain.VisualDesign: {
		{
			Pair: domain.PersonaPair{"UI Minimalist", "Feature-Rich Designer"},
			Keywords: []string{
				"minimalist", "simple", "clean", "complex",
				"feature-rich", "functionality",
			},
		},
		{
			Pair: domain.PersonaPair{"Brand Identity Expert", "User-Centered Designer"},
			Keywords: []string{
				"brand identity", "logo", "user-centered",
				"user research", "branding",
			},
		},
		{
			Pair: domain.PersonaPair{"Print Design Specialist", "Digital-First Designer"},
			Keywords: []string{
				"print", "digital", "web", "traditional", "digital-first",
			},
		},
		{
			Pair: domain.PersonaPair{"Artistic Creative", "Data-Driven Designer"},
			Keywords: []string{
				"artistic", "creative", "data-driven", "analytics",
				"metrics", "testing",
			},
		},
		{
			Pair: domain.PersonaPair{"Accessibility Expert", "Visual Artist"},
			Keywords: []string{
				"accessibility", "a11y", "visual", "aesthetics",
				"artistic", "inclusive design",
			},
		},
	},
	domain.ProductStrategy: {
		{
			Pair: domain.PersonaPair{"Customer Advocate", "Business Strategist"},
			Keywords: []string{
				"customer", "user needs", "business strategy",
				"monetization", "revenue",
			},
		},
		{
			Pair: domain.PersonaPair{"Innovative Disruptor", "Market Researcher"},
			Keywords: []string{
				"innovation", "disrupt", "market research", "validation",
				"competitive analysis",
			},
		},
		{
			Pair: domain.PersonaPair{"MVP Champion", "Quality Perfectionist"},
			Keywords: []string{
				"mvp", "minimum viable", "quality", "perfectionist",
				"launch", "iteration",
			},
		},
		{
			Pair: domain.PersonaPair{"Long-term Strategist", "Quick-to-Market Tactician"},
			Keywords: []string{
				"long-term", "strategy", "quick", "tactical", "roadmap",
				"timeline",
			},
		},
		{
			Pair: domain.PersonaPair{"Technical PM", "Business PM"},
			Keywords: []string{
				"technical", "engineering", "business", "stakeholder",
				"requirements", "technical debt",
			},
		},
	},
}

// DefaultIcon is used for personas outside the icon table, including custom
// personas supplied by the caller.
const DefaultIcon = "👤"

// personaIcons maps lowercase persona names to display glyphs.
var personaIcons = map[string]string{
	"developer":                 "👨‍💻",
	"security expert":           "🔒",
	"frontend engineer":         "🎨",
	"ux designer":               "🧑‍🎨",
	"backend engineer":          "⚙️",
	"devops engineer":           "🔧",
	"performance engineer":      "⚡",
	"maintainability advocate":  "🧹",
	"creative director":         "🎭",
	"analytics specialist":      "📊",
	"social media expert":       "📱",
	"growth hacker":             "📈",
	"brand strategist":          "🎯",
	"conversion optimizer":      "💰",
	"content creator":           "✍️",
	"performance marketer":      "🎪",
	"b2b marketer":              "🏢",
	"b2c marketer":              "👥",
	"landing page expert":       "🖥️",
	"seo specialist":            "🔍",
	"ui minimalist":             "⚪",
	"feature-rich designer":     "🧩",
	"brand identity expert":     "🏷️",
	"user-centered designer":    "👤",
	"print design specialist":   "📄",
	"digital-first designer":    "💻",
	"artistic creative":         "🎨",
	"data-driven designer":      "📊",
	"accessibility expert":      "♿",
	"visual artist":             "🖼️",
	"customer advocate":         "👥",
	"business strategist":       "📈",
	"innovative disruptor":      "💡",
	"market researcher":         "📊",
	"mvp champion":              "🚀",
	"quality perfectionist":     "✨",
	"long-term strategist":      "🔭",
	"quick-to-market tactician": "⚡",
	"technical pm":              "⚙️",
	"business pm":               "💼",
}

// DefaultFocus is the guidance sentence for personas outside the focus table.
const DefaultFocus = "Consider the perspective's unique expertise"

// personaFocus maps lowercase persona names to a one-line focus sentence
// interpolated into critique guidance. Not every catalog persona has an
// entry; the rest fall back to DefaultFocus.
var personaFocus = map[string]string{
	"developer":             "Focus on implementation feasibility, component design, and technical debt",
	"security expert":       "Focus on security vulnerabilities, data privacy, and regulatory compliance",
	"frontend engineer":     "Focus on frontend architecture, component design, and user interface implementation",
	"ux designer":           "Focus on user experience, accessibility, and usability",
	"creative director":     "Focus on brand consistency, emotional impact, and creative storytelling",
	"analytics specialist":  "Focus on measurable outcomes, data validation, and statistical rigor",
	"ui minimalist":         "Focus on simplicity, clarity, and cognitive load reduction",
	"feature-rich designer": "Focus on functionality completeness, discoverability, and feature organization",
	"customer advocate":     "Focus on user needs, pain points, and accessibility",
	"business strategist":   "Focus on strategic alignment, competitive positioning, and monetization",
}

// Icon returns the display glyph for a persona, falling back to DefaultIcon.
func Icon(persona string) string {
	if icon, ok := personaIcons[strings.ToLower(persona)]; ok {
		return icon
	}
	return DefaultIcon
}

// Focus returns the focus sentence for a persona, falling back to
// DefaultFocus for custom or unlisted personas.
func Focus(persona string) string {
	if focus, ok := personaFocus[strings.ToLower(persona)]; ok {
		return focus
	}
	return DefaultFocus
}

// PairsFor returns the ordered pair catalog for a domain. The returned slice
// must not be modified.
func PairsFor(d domain.Domain) []PairEntry {
	return PersonaPairs[d]
}
