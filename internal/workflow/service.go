// Package workflow implements the Counter-Pose session state machine: it
// composes the classifier, ranker, store, and synthesis extractor into the
// multi-step critique protocol.
package workflow

import (
	"context"
	"time"

	"github.com/rptlabs/counterpose/internal/classify"
	"github.com/rptlabs/counterpose/internal/domain"
	"github.com/rptlabs/counterpose/internal/store"
	"github.com/rptlabs/counterpose/internal/synthesis"
	"github.com/rptlabs/counterpose/internal/usage"
)

// Service drives critique sessions through the protocol:
// submit reasoning -> select personas -> critiques (round-robin) -> synthesis.
type Service struct {
	store store.Store
	usage *usage.Logger
}

// NewService creates the workflow service.
func NewService(s store.Store, u *usage.Logger) *Service {
	return &Service{store: s, usage: u}
}

// ReasoningResult is returned by SubmitReasoning.
type ReasoningResult struct {
	SessionID      string                `json:"session_id"`
	Domain         domain.Domain         `json:"domain"`
	PersonaOptions []classify.RankedPair `json:"persona_options"`
	NextStep       string                `json:"next_step"`
	Instructions   string                `json:"instructions"`
}

// SelectionResult is returned by SelectPersonas.
type SelectionResult struct {
	SessionID        string        `json:"session_id"`
	Domain           domain.Domain `json:"domain"`
	SelectedPersonas []string      `json:"selected_personas"`
	NextPersona      string        `json:"next_persona"`
	NextStep         string        `json:"next_step"`
	Format           string        `json:"format"`
	TotalSteps       int           `json:"total_steps"`
}

// CritiqueResult is returned by SubmitCritique.
type CritiqueResult struct {
	SessionID   string        `json:"session_id"`
	Domain      domain.Domain `json:"domain"`
	CurrentStep int           `json:"current_step"`
	NextPersona string        `json:"next_persona,omitempty"`
	NextStep    string        `json:"next_step"`
	Format      string        `json:"format"`
	TotalSteps  int           `json:"total_steps"`
}

// SynthesisResult is returned by SubmitSynthesis.
type SynthesisResult struct {
	SessionID      string            `json:"session_id"`
	Domain         domain.Domain     `json:"domain"`
	Personas       []string          `json:"personas"`
	StepsCompleted int               `json:"steps_completed"`
	Complete       bool              `json:"complete"`
	Confidence     domain.Confidence `json:"confidence"`
	ChangesNeeded  bool              `json:"changes_needed"`
	Summary        *domain.Session   `json:"session_summary"`
}

// SubmitReasoning classifies the reasoning into a domain, ranks the domain's
// persona pairs against it, and creates (or overwrites) the session in the
// persona-selection state.
func (s *Service) SubmitReasoning(ctx context.Context, sessionID, reasoning string) (*ReasoningResult, error) {
	d := classify.Classify(reasoning)
	options := classify.RankPairs(d, reasoning)

	now := time.Now()
	session := &domain.Session{
		ID:           sessionID,
		Domain:       d,
		State:        domain.StateAwaitingPersonaSelection,
		StartedAt:    now,
		LastActiveAt: now,
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}

	s.usage.Log(usage.Event{
		SessionID:  sessionID,
		Domain:     d,
		Persona:    "system",
		Step:       "init",
		TextLength: len(reasoning),
	})

	return &ReasoningResult{
		SessionID:      sessionID,
		Domain:         d,
		PersonaOptions: options,
		NextStep:       "select_personas",
		Instructions:   selectionInstructions,
	}, nil
}

// SelectPersonas stores the chosen pair on the session and returns critique
// guidance for the first persona. The pair need not come from the ranked
// options; custom persona names are accepted.
func (s *Service) SelectPersonas(ctx context.Context, sessionID string, personas []string) (*SelectionResult, error) {
	if len(personas) != 2 {
		return nil, invalidInputf("persona pair must contain exactly 2 personas, got %d", len(personas))
	}
	if personas[0] == personas[1] {
		return nil, invalidInputf("persona pair must contain two distinct personas, got %q twice", personas[0])
	}

	var result *SelectionResult
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		session.Personas = append([]string(nil), personas...)
		session.State = domain.StateAwaitingCritiques
		session.LastActiveAt = time.Now()

		result = &SelectionResult{
			SessionID:        sessionID,
			Domain:           session.Domain,
			SelectedPersonas: append([]string(nil), personas...),
			NextPersona:      personas[0],
			NextStep:         "critique",
			Format:           critiqueFormat(personas[0]),
			TotalSteps:       len(personas) + 1,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.usage.Log(usage.Event{
		SessionID:  sessionID,
		Domain:     result.Domain,
		Persona:    "system",
		Step:       "select_personas",
		TextLength: len(personas[0]) + len(personas[1]),
	})
	return result, nil
}

// SubmitCritique records one persona's critique. While unsubmitted personas
// remain, the next persona is chosen round-robin; after the last critique
// the session advances to the synthesis step.
func (s *Service) SubmitCritique(ctx context.Context, sessionID, persona, critique string) (*CritiqueResult, error) {
	var result *CritiqueResult
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		if !session.HasPersona(persona) {
			return invalidInputf("persona %q is not part of this session", persona)
		}

		session.RecordStep(domain.StepCritique, persona, critique)

		result = &CritiqueResult{
			SessionID:   sessionID,
			Domain:      session.Domain,
			CurrentStep: session.CritiqueCount(),
			TotalSteps:  len(session.Personas) + 1,
		}
		if session.CritiqueCount() < len(session.Personas) {
			next := session.NextPersonaAfter(persona)
			session.State = domain.StateAwaitingCritiques
			result.NextPersona = next
			result.NextStep = "critique"
			result.Format = critiqueFormat(next)
		} else {
			session.State = domain.StateAwaitingSynthesis
			result.NextStep = "synthesis"
			result.Format = synthesisFormat(session.Personas)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.usage.Log(usage.Event{
		SessionID:  sessionID,
		Domain:     result.Domain,
		Persona:    persona,
		Step:       "critique",
		TextLength: len(critique),
	})
	return result, nil
}

// SubmitSynthesis records the synthesis step, extracts confidence and
// changes-needed from its text, and completes the session.
func (s *Service) SubmitSynthesis(ctx context.Context, sessionID, synthesisText string) (*SynthesisResult, error) {
	extracted := synthesis.Extract(synthesisText)

	var d domain.Domain
	err := s.store.Update(ctx, sessionID, func(session *domain.Session) error {
		session.RecordStep(domain.StepSynthesis, "", synthesisText)
		session.Confidence = extracted.Confidence
		session.ChangesNeeded = extracted.ChangesNeeded
		session.BlindSpots = extracted.BlindSpots
		session.Contradictions = extracted.Contradictions
		session.State = domain.StateComplete
		d = session.Domain
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.usage.Log(usage.Event{
		SessionID:  sessionID,
		Domain:     d,
		Persona:    "synthesizer",
		Step:       "synthesis",
		TextLength: len(synthesisText),
	})

	summary, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SynthesisResult{
		SessionID:      sessionID,
		Domain:         summary.Domain,
		Personas:       summary.Personas,
		StepsCompleted: len(summary.Steps),
		Complete:       true,
		Confidence:     summary.Confidence,
		ChangesNeeded:  summary.ChangesNeeded,
		Summary:        summary,
	}, nil
}

// GetSession returns a read-only snapshot of the session.
func (s *Service) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.store.Get(ctx, sessionID)
}
