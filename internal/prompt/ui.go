// Package prompt drives a wizard session from an interactive terminal.
package prompt

import (
	"context"

	"github.com/charmbracelet/huh"
)

// Prompt describes one input shown to the user.
type Prompt struct {
	Group       string
	Title       string
	Description string
	Placeholder string
	Options     []string
	Secret      bool
}

// UI collects single inputs. HuhUI is the terminal implementation.
type UI interface {
	Select(ctx context.Context, p Prompt, value string) (string, error)
	MultiSelect(ctx context.Context, p Prompt, value []string) ([]string, error)
	Input(ctx context.Context, p Prompt, value string) (string, error)
}

// HuhUI renders prompts as huh forms.
type HuhUI struct {
	// Accessible switches huh to its screen-reader friendly mode.
	Accessible bool
}

// Select prompts for one of p.Options.
func (u HuhUI) Select(ctx context.Context, p Prompt, value string) (string, error) {
	err := u.run(ctx, p.Group,
		huh.NewSelect[string]().
			Title(p.Title).
			Description(p.Description).
			Options(huh.NewOptions(p.Options...)...).
			Value(&value),
	)
	return value, err
}

// MultiSelect prompts for any subset of p.Options.
func (u HuhUI) MultiSelect(ctx context.Context, p Prompt, value []string) ([]string, error) {
	err := u.run(ctx, p.Group,
		huh.NewMultiSelect[string]().
			Title(p.Title).
			Description(p.Description).
			Options(huh.NewOptions(p.Options...)...).
			Value(&value),
	)
	return value, err
}

// Input prompts for free text. Secret prompts mask what is typed.
func (u HuhUI) Input(ctx context.Context, p Prompt, value string) (string, error) {
	input := huh.NewInput().
		Title(p.Title).
		Description(p.Description).
		Placeholder(p.Placeholder).
		Value(&value)
	if p.Secret {
		input.EchoMode(huh.EchoModePassword)
	}
	err := u.run(ctx, p.Group, input)
	return value, err
}

func (u HuhUI) run(ctx context.Context, group string, field huh.Field) error {
	return huh.NewForm(
		huh.NewGroup(field).Title(group),
	).WithAccessible(u.Accessible).RunWithContext(ctx)
}
