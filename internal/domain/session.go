package domain

import (
	"time"
)

// State identifies where a session is in the critique protocol.
type State string

const (
	StateAwaitingPersonaSelection State = "awaiting_persona_selection"
	StateAwaitingCritiques        State = "awaiting_critiques"
	StateAwaitingSynthesis        State = "awaiting_synthesis"
	StateComplete                 State = "complete"
)

// StepKind tags a recorded workflow step.
type StepKind string

const (
	StepCritique  StepKind = "critique"
	StepSynthesis StepKind = "synthesis"
)

// Step is one append-only record in a session's history. Steps are never
// edited or removed after being appended.
type Step struct {
	Kind      StepKind  `json:"kind"`
	Persona   string    `json:"persona,omitempty"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds the mutable state of one Counter-Pose workflow instance.
// The domain is set once at creation and never changes afterward.
type Session struct {
	ID             string     `json:"session_id"`
	Domain         Domain     `json:"domain"`
	State          State      `json:"state"`
	Personas       []string   `json:"personas"`
	Steps          []Step     `json:"steps"`
	StartedAt      time.Time  `json:"started_at"`
	LastActiveAt   time.Time  `json:"last_active_at"`
	Confidence     Confidence `json:"confidence,omitempty"`
	ChangesNeeded  bool       `json:"changes_needed"`
	BlindSpots     []string   `json:"blind_spots"`
	Contradictions []string   `json:"contradictions"`
}

// RecordStep appends a step to the session history.
func (s *Session) RecordStep(kind StepKind, persona, content string) {
	s.Steps = append(s.Steps, Step{
		Kind:      kind,
		Persona:   persona,
		Content:   content,
		Timestamp: time.Now(),
	})
	s.LastActiveAt = time.Now()
}

// CritiqueCount returns how many critique steps have been recorded.
func (s *Session) CritiqueCount() int {
	n := 0
	for _, step := range s.Steps {
		if step.Kind == StepCritique {
			n++
		}
	}
	return n
}

// HasPersona reports whether name is one of the session's selected personas.
func (s *Session) HasPersona(name string) bool {
	for _, p := range s.Personas {
		if p == name {
			return true
		}
	}
	return false
}

// NextPersonaAfter returns the persona following the given one in
// round-robin order. Returns the first persona when name is not found.
func (s *Session) NextPersonaAfter(name string) string {
	if len(s.Personas) == 0 {
		return ""
	}
	for i, p := range s.Personas {
		if p == name {
			return s.Personas[(i+1)%len(s.Personas)]
		}
	}
	return s.Personas[0]
}
