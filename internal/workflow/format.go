package workflow

import (
	"fmt"
	"strings"

	"github.com/rptlabs/counterpose/internal/catalog"
)

// selectionInstructions tells the caller what to do after receiving ranked
// persona options.
const selectionInstructions = "Choose a persona pair from the options above, or specify your own custom pair for this domain."

// critiqueFormat builds the guidance text a caller mimics when producing a
// critique for one persona. The wording is a contract with the caller only;
// nothing downstream parses it.
func critiqueFormat(persona string) string {
	return fmt.Sprintf(`As %[1]s, critique the reasoning from your specific perspective.

%[2]s

Identify:
1. Key claims that need examination
2. Potential blind spots or unconsidered factors
3. Logical contradictions or tensions
4. Alternative approaches worth considering

Format your critique as:

%[3]s %[4]s's CRITIQUE:
<Your critique here>

END CRITIQUE
`, persona, catalog.Focus(persona), catalog.Icon(persona), strings.ToUpper(persona))
}

// synthesisFormat builds the guidance text for the final synthesis step.
// The CONFIDENCE and CHANGES NEEDED markers in the skeleton are the exact
// substrings the extractor later searches for.
func synthesisFormat(personas []string) string {
	return fmt.Sprintf(`SYNTHESIS OF PERSPECTIVES:

After considering the critiques from %s, synthesize a balanced recommendation.

Your synthesis should:
1. Identify key blind spots raised by each perspective
2. Note any contradictions between perspectives
3. Provide a confidence assessment (High/Medium/Low)
4. Recommend whether changes are needed to the original reasoning
5. Offer specific recommendations for improvement

Format your synthesis as:

BLIND SPOTS IDENTIFIED:
<List of blind spots>

CONTRADICTIONS FOUND:
<List of contradictions>

CONFIDENCE: <High/Medium/Low>

CHANGES NEEDED: <Yes/No>

RECOMMENDATION:
<Your synthesized recommendation>

END SYNTHESIS
`, strings.Join(personas, " and "))
}
