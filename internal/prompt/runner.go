package prompt

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/c8values/internal/wizard"
)

// Navigation choices offered after each step.
const (
	NavNext     = "Next"
	NavBack     = "Back"
	NavGenerate = "Generate"
)

// Runner walks a session step by step through a UI.
type Runner struct {
	session *wizard.Session
	ui      UI
	log     logr.Logger
}

// NewRunner returns a runner for session.
func NewRunner(session *wizard.Session, ui UI, log logr.Logger) *Runner {
	return &Runner{session: session, ui: ui, log: log}
}

// Run asks every visible question of the current step, then lets the user
// move on, go back or generate. It returns the generated document.
func (r *Runner) Run(ctx context.Context) (string, error) {
	for {
		step, ok := r.session.Current()
		if !ok {
			return "", errNoSteps
		}
		if err := r.askStep(ctx, step.Ordinal); err != nil {
			return "", fmt.Errorf("%s: %w", step.Title, err)
		}

		choice, err := r.ui.Select(ctx, Prompt{
			Group:   r.header(),
			Title:   "What next?",
			Options: r.navOptions(),
		}, r.defaultNav())
		if err != nil {
			return "", fmt.Errorf("navigation: %w", err)
		}

		switch choice {
		case NavNext:
			r.session.Advance()
		case NavBack:
			r.session.Retreat()
		case NavGenerate:
			return r.session.Generate(), nil
		}
	}
}

// askStep asks each visible question of the step once. Questions are
// re-resolved after every answer so follow-ups appear in place.
func (r *Runner) askStep(ctx context.Context, ordinal int) error {
	asked := map[string]bool{}
	for {
		step, ok := r.session.Current()
		if !ok || step.Ordinal != ordinal {
			return nil
		}
		q, found := nextQuestion(step, asked)
		if !found {
			return nil
		}
		asked[q.ID] = true

		if err := r.ask(ctx, q); err != nil {
			return err
		}
	}
}

func nextQuestion(step wizard.ResolvedStep, asked map[string]bool) (wizard.Question, bool) {
	for _, q := range step.Questions {
		if !asked[q.ID] {
			return q, true
		}
	}
	return wizard.Question{}, false
}

func (r *Runner) ask(ctx context.Context, q wizard.Question) error {
	p := Prompt{
		Group:       r.header(),
		Title:       q.Prompt,
		Description: q.Description,
		Placeholder: q.Placeholder,
		Options:     q.Options,
		Secret:      q.Kind == wizard.Secret,
	}
	answers := r.session.Answers()
	r.log.V(2).Info("asking", "question", q.ID, "kind", q.Kind)

	switch q.Kind {
	case wizard.SingleChoice:
		v, err := r.ui.Select(ctx, p, answers.Text(q.ID))
		if err != nil {
			return err
		}
		r.session.SaveAnswer(q.ID, wizard.Text(v))
	case wizard.MultiChoice:
		v, err := r.ui.MultiSelect(ctx, p, answers.Choices(q.ID))
		if err != nil {
			return err
		}
		r.session.SaveAnswer(q.ID, wizard.Choices(v))
	case wizard.FieldList:
		return r.editList(ctx, p, r.session.FieldList(q.ID))
	default:
		v, err := r.ui.Input(ctx, p, answers.Text(q.ID))
		if err != nil {
			return err
		}
		r.session.SaveAnswer(q.ID, wizard.Text(v))
	}
	return nil
}

func (r *Runner) header() string {
	step, ok := r.session.Current()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Step %d of %d: %s", r.session.Position(), r.session.Total(), step.Title)
}

func (r *Runner) navOptions() []string {
	var opts []string
	if r.session.CanAdvance() {
		opts = append(opts, NavNext)
	}
	if r.session.CanRetreat() {
		opts = append(opts, NavBack)
	}
	return append(opts, NavGenerate)
}

func (r *Runner) defaultNav() string {
	if r.session.CanAdvance() {
		return NavNext
	}
	return NavGenerate
}
