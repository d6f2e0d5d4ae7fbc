package catalog

import (
	"github.com/rptlabs/counterpose/internal/domain"
)

// Template is an example reasoning scenario with the persona pair suited to
// it, served by the read-only templates endpoint as caller documentation.
type Template struct {
	Query    string             `json:"query"`
	Domain   domain.Domain      `json:"domain"`
	Personas domain.PersonaPair `json:"personas"`
	Summary  string             `json:"summary"`
}

// Templates holds example scenarios keyed by a short name.
var Templates = map[string]Template{
	"jwt_authentication": {
		Query:    "I plan to store JWT tokens in localStorage with a 24-hour expiration for our web app's authentication.",
		Domain:   domain.SoftwareDevelopment,
		Personas: domain.PersonaPair{"Developer", "Security Expert"},
		Summary:  "Developer weighs implementation simplicity; Security Expert flags XSS exposure of localStorage and missing refresh strategy.",
	},
	"landing_page_redesign": {
		Query:    "We should redesign the landing page around a single hero video to lift conversion.",
		Domain:   domain.DigitalMarketing,
		Personas: domain.PersonaPair{"Landing Page Expert", "SEO Specialist"},
		Summary:  "Landing Page Expert examines conversion impact; SEO Specialist flags crawlability and page-weight costs of video-first layouts.",
	},
	"design_system_choice": {
		Query:    "Should we adopt Material Design or build a custom design system for our product?",
		Domain:   domain.VisualDesign,
		Personas: domain.PersonaPair{"UI Minimalist", "Feature-Rich Designer"},
		Summary:  "UI Minimalist favors the constraint of an existing system; Feature-Rich Designer weighs the flexibility a custom system buys.",
	},
	"mvp_vs_polish": {
		Query:    "Should we launch an MVP next month or wait a quarter for a more polished product?",
		Domain:   domain.ProductStrategy,
		Personas: domain.PersonaPair{"MVP Champion", "Quality Perfectionist"},
		Summary:  "MVP Champion pushes for market feedback now; Quality Perfectionist weighs first-impression risk against iteration speed.",
	},
}
