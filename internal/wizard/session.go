package wizard

import (
	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Generator renders a document from a snapshot of the answers.
type Generator func(Answers) string

// Option configures a Session.
type Option func(*Session)

// WithGenerator sets the function used by Session.Generate.
func WithGenerator(g Generator) Option {
	return func(s *Session) {
		s.generator = g
	}
}

// WithLogger sets the session logger. Answer writes are logged at V(1),
// navigation at V(2).
func WithLogger(log logr.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// Session is one run through the wizard. It owns the answer store and is
// not safe for concurrent use.
type Session struct {
	id        string
	schema    Schema
	answers   Answers
	steps     []ResolvedStep
	nav       Navigator
	generator Generator
	log       logr.Logger

	output    string
	generated bool
}

// NewSession starts a session with an empty answer store on the first step.
func NewSession(schema Schema, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		schema:  schema,
		answers: make(Answers),
		nav:     NewNavigator(),
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithValues("session", s.id)
	s.steps = Resolve(s.schema, s.answers)
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Schema returns the catalogue the session runs on.
func (s *Session) Schema() Schema {
	return s.schema
}

// SaveAnswer replaces the answer stored under id, re-resolves the visible
// steps and repositions navigation. Changing the selector answer always
// returns to the first step; any other change only clamps the position.
func (s *Session) SaveAnswer(id string, v Value) {
	if v == nil {
		return
	}
	s.answers[id] = v.clone()
	s.steps = Resolve(s.schema, s.answers)

	if id == s.schema.Selector {
		s.nav.Reanchor()
		s.log.V(1).Info("selector changed, returning to first step", "question", id, "steps", len(s.steps))
	} else {
		s.nav.Clamp(len(s.steps))
	}
	s.log.V(1).Info("answer saved", "question", id, "position", s.nav.Position(), "steps", len(s.steps))
}

// Answer returns a copy of the answer stored under id.
func (s *Session) Answer(id string) (Value, bool) {
	v, ok := s.answers[id]
	if !ok {
		return nil, false
	}
	return v.clone(), true
}

// Answers returns a copy of the whole answer store, hidden answers included.
func (s *Session) Answers() Answers {
	return s.answers.Clone()
}

// Steps returns the currently visible steps.
func (s *Session) Steps() []ResolvedStep {
	return s.steps
}

// Current returns the step at the current position, false when no step is
// visible.
func (s *Session) Current() (ResolvedStep, bool) {
	if len(s.steps) == 0 {
		return ResolvedStep{}, false
	}
	return s.steps[s.nav.Position()-1], true
}

// Position returns the 1-based position within Steps.
func (s *Session) Position() int {
	return s.nav.Position()
}

// Total returns the number of visible steps.
func (s *Session) Total() int {
	return len(s.steps)
}

// CanAdvance reports whether a step follows the current one.
func (s *Session) CanAdvance() bool {
	return !s.nav.OnLast(len(s.steps))
}

// CanRetreat reports whether a step precedes the current one.
func (s *Session) CanRetreat() bool {
	return s.nav.Position() > 1
}

// Advance moves to the next visible step; false means there is none.
func (s *Session) Advance() bool {
	ok := s.nav.Advance(len(s.steps))
	s.log.V(2).Info("advance", "permitted", ok, "position", s.nav.Position())
	return ok
}

// Retreat moves to the previous visible step; false means there is none.
func (s *Session) Retreat() bool {
	ok := s.nav.Retreat()
	s.log.V(2).Info("retreat", "permitted", ok, "position", s.nav.Position())
	return ok
}

// Generate renders the current answers and records the result. It can be
// called from any position.
func (s *Session) Generate() string {
	if s.generator == nil {
		return ""
	}
	s.output = s.generator(s.answers.Clone())
	s.generated = true
	s.log.V(1).Info("document generated", "bytes", len(s.output))
	return s.output
}

// Output returns the last generated document. The boolean is false until
// Generate has run at least once.
func (s *Session) Output() (string, bool) {
	return s.output, s.generated
}

// FieldList returns an editor for the FieldList question id.
func (s *Session) FieldList(id string) *FieldListEditor {
	return &FieldListEditor{session: s, id: id, editing: -1}
}
