package handlers

import (
	"context"
	"os"
	"slices"

	"github.com/mattn/go-isatty"

	"github.com/imamik/c8values/internal/camunda"
	"github.com/imamik/c8values/internal/config"
	"github.com/imamik/c8values/internal/logging"
	"github.com/imamik/c8values/internal/values"
	"github.com/imamik/c8values/internal/wizard"
)

// Factory function variables shared by handlers - can be replaced in tests.
var (
	fileExists       = config.FileExists
	confirmOverwrite = config.ConfirmOverwrite
	loadAnswers      = config.LoadAnswers
	writeValues      = config.WriteValues
	readFile         = os.ReadFile
	isInteractiveTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

// newSession starts a Camunda wizard session that logs through ctx's logger.
func newSession(ctx context.Context) *wizard.Session {
	return wizard.NewSession(camunda.Schema(),
		wizard.WithGenerator(values.Generate),
		wizard.WithLogger(logging.FromContext(ctx).WithName("session")),
	)
}

// prefill saves answers into the session. The selector goes first so the
// remaining writes keep the position on the first step.
func prefill(s *wizard.Session, answers wizard.Answers) {
	selector := s.Schema().Selector
	if v, ok := answers[selector]; ok {
		s.SaveAnswer(selector, v)
	}
	ids := make([]string, 0, len(answers))
	for id := range answers {
		if id != selector {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	for _, id := range ids {
		s.SaveAnswer(id, answers[id])
	}
}
