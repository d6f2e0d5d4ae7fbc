package workflow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rptlabs/counterpose/internal/domain"
	"github.com/rptlabs/counterpose/internal/store"
	"github.com/rptlabs/counterpose/internal/usage"
)

const securityReasoning = "I need to implement secure authentication with JWT tokens, considering encryption, vulnerability protection and privacy compliance."

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger, err := usage.New(usage.Config{Enabled: false})
	if err != nil {
		t.Fatalf("usage.New failed: %v", err)
	}
	return NewService(store.NewMemory(0), logger)
}

func TestSubmitReasoningClassifiesAndRanks(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning)
	if err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}

	if res.Domain != domain.SoftwareDevelopment {
		t.Errorf("domain = %q, want software_development", res.Domain)
	}
	if res.NextStep != "select_personas" {
		t.Errorf("next step = %q, want select_personas", res.NextStep)
	}
	if len(res.PersonaOptions) == 0 {
		t.Fatal("expected persona options")
	}
	top := res.PersonaOptions[0]
	if !top.Recommended {
		t.Error("first option should be recommended")
	}
	want := domain.PersonaPair{"Developer", "Security Expert"}
	if top.Pair != want || top.Score <= 0 {
		t.Errorf("top option = %+v, want %v with positive score", top, want)
	}

	// The stored session must reflect the returned domain.
	session, err := svc.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if session.Domain != res.Domain {
		t.Errorf("stored domain %q differs from returned %q", session.Domain, res.Domain)
	}
	if session.State != domain.StateAwaitingPersonaSelection {
		t.Errorf("state = %q, want awaiting_persona_selection", session.State)
	}
}

func TestSelectPersonasArity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}

	tests := []struct {
		name     string
		personas []string
	}{
		{"empty", nil},
		{"one", []string{"Developer"}},
		{"three", []string{"Developer", "Security Expert", "UX Designer"}},
		{"duplicate", []string{"Developer", "Developer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invalid *InvalidInputError
			_, err := svc.SelectPersonas(ctx, "sess-1", tt.personas)
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidInputError, got %v", err)
			}

			// Failed selection must not mutate the session.
			session, getErr := svc.GetSession(ctx, "sess-1")
			if getErr != nil {
				t.Fatalf("GetSession failed: %v", getErr)
			}
			if len(session.Personas) != 0 {
				t.Errorf("session mutated by failed selection: %v", session.Personas)
			}
		})
	}
}

func TestSelectPersonasUnknownSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.SelectPersonas(context.Background(), "missing", []string{"Developer", "Security Expert"})
	if !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSelectPersonasAcceptsCustomNames(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}

	res, err := svc.SelectPersonas(ctx, "sess-1", []string{"Database Admin", "Compliance Officer"})
	if err != nil {
		t.Fatalf("SelectPersonas with custom names failed: %v", err)
	}
	if res.NextPersona != "Database Admin" {
		t.Errorf("next persona = %q, want first of pair", res.NextPersona)
	}
	// Custom personas get the generic focus sentence and default icon.
	if !strings.Contains(res.Format, "Consider the perspective's unique expertise") {
		t.Errorf("expected generic guidance in format:\n%s", res.Format)
	}
	if !strings.Contains(res.Format, "👤 DATABASE ADMIN's CRITIQUE:") {
		t.Errorf("expected default icon and upper-cased name in format:\n%s", res.Format)
	}
}

func TestSubmitCritiqueRoundRobin(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}
	if _, err := svc.SelectPersonas(ctx, "sess-1", []string{"Developer", "Security Expert"}); err != nil {
		t.Fatalf("SelectPersonas failed: %v", err)
	}

	first, err := svc.SubmitCritique(ctx, "sess-1", "Developer", "localStorage is XSS-exposed")
	if err != nil {
		t.Fatalf("first SubmitCritique failed: %v", err)
	}
	if first.NextStep != "critique" || first.NextPersona != "Security Expert" {
		t.Errorf("after first critique: next = %q by %q, want critique by Security Expert", first.NextStep, first.NextPersona)
	}
	if first.CurrentStep != 1 || first.TotalSteps != 3 {
		t.Errorf("progress = %d/%d, want 1/3", first.CurrentStep, first.TotalSteps)
	}

	second, err := svc.SubmitCritique(ctx, "sess-1", "Security Expert", "no refresh strategy")
	if err != nil {
		t.Fatalf("second SubmitCritique failed: %v", err)
	}
	if second.NextStep != "synthesis" {
		t.Errorf("after all critiques: next = %q, want synthesis", second.NextStep)
	}
	if second.NextPersona != "" {
		t.Errorf("next persona = %q, want empty before synthesis", second.NextPersona)
	}
	if !strings.Contains(second.Format, "SYNTHESIS OF PERSPECTIVES:") {
		t.Errorf("expected synthesis guidance, got:\n%s", second.Format)
	}
	if !strings.Contains(second.Format, "Developer and Security Expert") {
		t.Errorf("synthesis guidance should name both personas:\n%s", second.Format)
	}

	session, _ := svc.GetSession(ctx, "sess-1")
	if session.State != domain.StateAwaitingSynthesis {
		t.Errorf("state = %q, want awaiting_synthesis", session.State)
	}
}

func TestSubmitCritiqueOutOfOrderPersona(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}
	if _, err := svc.SelectPersonas(ctx, "sess-1", []string{"Developer", "Security Expert"}); err != nil {
		t.Fatalf("SelectPersonas failed: %v", err)
	}

	// Submitting as the second persona first is allowed; round-robin wraps
	// to the remaining one.
	res, err := svc.SubmitCritique(ctx, "sess-1", "Security Expert", "threat model first")
	if err != nil {
		t.Fatalf("SubmitCritique failed: %v", err)
	}
	if res.NextPersona != "Developer" {
		t.Errorf("next persona = %q, want Developer", res.NextPersona)
	}
}

func TestSubmitCritiquePersonaNotInSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}
	if _, err := svc.SelectPersonas(ctx, "sess-1", []string{"Developer", "Security Expert"}); err != nil {
		t.Fatalf("SelectPersonas failed: %v", err)
	}

	var invalid *InvalidInputError
	_, err := svc.SubmitCritique(ctx, "sess-1", "UX Designer", "not my session")
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if !strings.Contains(invalid.Reason, "UX Designer") {
		t.Errorf("error should name the offending persona: %q", invalid.Reason)
	}

	session, _ := svc.GetSession(ctx, "sess-1")
	if len(session.Steps) != 0 {
		t.Errorf("rejected critique appended a step: %v", session.Steps)
	}
}

func TestSubmitSynthesisCompletesSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()
	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}
	if _, err := svc.SelectPersonas(ctx, "sess-1", []string{"Developer", "Security Expert"}); err != nil {
		t.Fatalf("SelectPersonas failed: %v", err)
	}
	if _, err := svc.SubmitCritique(ctx, "sess-1", "Developer", "critique one"); err != nil {
		t.Fatalf("SubmitCritique failed: %v", err)
	}
	if _, err := svc.SubmitCritique(ctx, "sess-1", "Security Expert", "critique two"); err != nil {
		t.Fatalf("SubmitCritique failed: %v", err)
	}

	synthesisText := "BLIND SPOTS IDENTIFIED:\n- token storage\n\nCONFIDENCE: High\n\nCHANGES NEEDED: Yes\n\nEND SYNTHESIS"
	res, err := svc.SubmitSynthesis(ctx, "sess-1", synthesisText)
	if err != nil {
		t.Fatalf("SubmitSynthesis failed: %v", err)
	}

	if !res.Complete {
		t.Error("expected complete = true")
	}
	if res.Confidence != domain.ConfidenceHigh {
		t.Errorf("confidence = %q, want High", res.Confidence)
	}
	if !res.ChangesNeeded {
		t.Error("expected changesNeeded = true")
	}
	if res.StepsCompleted != 3 {
		t.Errorf("steps completed = %d, want 3", res.StepsCompleted)
	}
	if res.Summary == nil || res.Summary.State != domain.StateComplete {
		t.Errorf("summary state = %+v, want complete", res.Summary)
	}
	if len(res.Summary.BlindSpots) != 1 {
		t.Errorf("blind spots = %v, want 1 entry", res.Summary.BlindSpots)
	}
}

func TestSubmitSynthesisUnknownSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	_, err := svc.SubmitSynthesis(context.Background(), "missing", "CONFIDENCE: High")
	if !errors.Is(err, store.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SubmitReasoning(ctx, "sess-a", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}
	if _, err := svc.SubmitReasoning(ctx, "sess-b", "How should I prioritize my product roadmap?"); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}

	if _, err := svc.SelectPersonas(ctx, "sess-a", []string{"Developer", "Security Expert"}); err != nil {
		t.Fatalf("SelectPersonas failed: %v", err)
	}

	b, err := svc.GetSession(ctx, "sess-b")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if len(b.Personas) != 0 {
		t.Errorf("session B personas mutated by session A selection: %v", b.Personas)
	}
	if b.Domain != domain.ProductStrategy {
		t.Errorf("session B domain = %q, want product_strategy", b.Domain)
	}
}

func TestSubmitReasoningOverwritesExistingSession(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.SubmitReasoning(ctx, "sess-1", securityReasoning); err != nil {
		t.Fatalf("SubmitReasoning failed: %v", err)
	}
	if _, err := svc.SelectPersonas(ctx, "sess-1", []string{"Developer", "Security Expert"}); err != nil {
		t.Fatalf("SelectPersonas failed: %v", err)
	}

	res, err := svc.SubmitReasoning(ctx, "sess-1", "Should we redesign the landing page layout with new typography?")
	if err != nil {
		t.Fatalf("second SubmitReasoning failed: %v", err)
	}
	if res.Domain != domain.VisualDesign {
		t.Errorf("domain = %q, want visual_design", res.Domain)
	}

	session, _ := svc.GetSession(ctx, "sess-1")
	if len(session.Personas) != 0 || len(session.Steps) != 0 {
		t.Errorf("overwrite merged old state: %+v", session)
	}
	if session.State != domain.StateAwaitingPersonaSelection {
		t.Errorf("state = %q, want awaiting_persona_selection", session.State)
	}
}
