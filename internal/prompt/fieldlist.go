package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/c8values/internal/wizard"
)

const (
	actionAdd  = "Add entry"
	actionDone = "Done"
)

// editList runs the add/edit/remove menu for one field list until the user
// picks Done.
func (r *Runner) editList(ctx context.Context, p Prompt, editor *wizard.FieldListEditor) error {
	for {
		entries := editor.Entries()
		options := []string{actionAdd}
		for i, f := range entries {
			options = append(options,
				fmt.Sprintf("Edit %d: %s", i+1, f.Name),
				fmt.Sprintf("Remove %d: %s", i+1, f.Name),
			)
		}
		options = append(options, actionDone)

		choice, err := r.ui.Select(ctx, Prompt{
			Group:       p.Group,
			Title:       p.Title,
			Description: listSummary(entries),
			Options:     options,
		}, actionDone)
		if err != nil {
			return err
		}

		switch {
		case choice == actionDone:
			return nil
		case choice == actionAdd:
			name, value, err := r.askEntry(ctx, p, editor.Draft())
			if err != nil {
				return err
			}
			if !editor.Add(name, value) {
				r.log.Info("entry needs both a name and a value")
			}
		default:
			var verb string
			var n int
			if _, err := fmt.Sscanf(choice, "%s %d:", &verb, &n); err != nil {
				return fmt.Errorf("unexpected choice %q: %w", choice, err)
			}
			if verb == "Remove" {
				editor.Remove(n - 1)
				continue
			}
			if !editor.StartEdit(n - 1) {
				continue
			}
			name, value, err := r.askEntry(ctx, p, editor.Draft())
			if err != nil {
				editor.ResetDraft()
				return err
			}
			editor.SetDraft(name, value)
			editor.CommitEdit()
		}
	}
}

func (r *Runner) askEntry(ctx context.Context, p Prompt, draft wizard.Field) (string, string, error) {
	name, err := r.ui.Input(ctx, Prompt{Group: p.Group, Title: "Name", Placeholder: "ZEEBE_LOG_LEVEL"}, draft.Name)
	if err != nil {
		return "", "", err
	}
	value, err := r.ui.Input(ctx, Prompt{Group: p.Group, Title: "Value", Placeholder: "debug"}, draft.Value)
	if err != nil {
		return "", "", err
	}
	return name, value, nil
}

func listSummary(entries []wizard.Field) string {
	if len(entries) == 0 {
		return "No entries yet."
	}
	lines := make([]string, len(entries))
	for i, f := range entries {
		lines[i] = fmt.Sprintf("%s=%s", f.Name, f.Value)
	}
	return strings.Join(lines, "\n")
}
