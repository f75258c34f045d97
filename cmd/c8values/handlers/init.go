package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/imamik/c8values/internal/helm"
	"github.com/imamik/c8values/internal/logging"
	"github.com/imamik/c8values/internal/prompt"
	"github.com/imamik/c8values/internal/ui/tui"
	"github.com/imamik/c8values/internal/util/prerequisites"
	"github.com/imamik/c8values/internal/values"
	"github.com/imamik/c8values/internal/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// runWizard walks the session interactively and returns the document.
	runWizard = func(ctx context.Context, session *wizard.Session, accessible bool) (string, error) {
		ui := prompt.HuhUI{Accessible: accessible}
		return prompt.NewRunner(session, ui, logging.FromContext(ctx).WithName("prompt")).Run(ctx)
	}

	// runPreview shows the document and asks whether to write it.
	runPreview = tui.RunPreview

	// checkTools looks for the binaries used to install the values.
	checkTools = prerequisites.CheckInstall
)

// InitOptions holds the flags of the init command.
type InitOptions struct {
	OutputPath  string
	AnswersPath string
	Accessible  bool
	NoPreview   bool
}

// Init runs the interactive wizard and writes the generated values file.
func Init(ctx context.Context, opts InitOptions) error {
	if fileExists(opts.OutputPath) {
		ok, err := confirmOverwrite(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			fmt.Println("Aborted, nothing written.")
			return nil
		}
	}

	session := newSession(ctx)
	if opts.AnswersPath != "" {
		answers, err := loadAnswers(opts.AnswersPath, session.Schema())
		if err != nil {
			return fmt.Errorf("failed to load answers: %w", err)
		}
		prefill(session, answers)
	}

	printWelcome()

	interactive := isInteractiveTTY()
	content, err := runWizard(ctx, session, opts.Accessible || !interactive)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	findings := lintFindings(content)

	if interactive && !opts.NoPreview {
		ok, err := runPreview(ctx, opts.OutputPath, content, findings)
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		if !ok {
			fmt.Println("Discarded, nothing written.")
			return nil
		}
	}

	if err := writeValues(content, opts.OutputPath, opts.AnswersPath); err != nil {
		return fmt.Errorf("failed to write values: %w", err)
	}

	printInitSuccess(opts.OutputPath, session, findings)
	return nil
}

// lintFindings runs the values lint and flattens its findings for display.
// A document that does not parse is reported as a finding so the answers
// are still written and can be fixed by hand.
func lintFindings(content string) []string {
	report, err := helm.Lint([]byte(content))
	if err != nil {
		return []string{fmt.Sprintf("values do not parse, quote special characters by hand: %v", err)}
	}
	findings := make([]string, len(report.Findings))
	for i, f := range report.Findings {
		findings[i] = f.String()
	}
	return findings
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("c8values - Camunda 8 Helm values")
	fmt.Println("================================")
	fmt.Println()
	fmt.Println("This wizard asks which Camunda 8 components you deploy and how they")
	fmt.Println("reach their databases, then writes a values file for the")
	fmt.Println("camunda-platform chart. Use Back to revise earlier answers.")
	fmt.Println()
}

// printInitSuccess prints the answer summary and next steps.
func printInitSuccess(outputPath string, session *wizard.Session, findings []string) {
	content, _ := session.Output()

	fmt.Println()
	fmt.Println("Values saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	fmt.Println("Answers")
	fmt.Println("-------")
	answers := session.Answers()
	for _, step := range session.Steps() {
		for _, q := range step.Questions {
			if !answers.Has(q.ID) {
				continue
			}
			fmt.Printf("  %-28s %s\n", q.ID+":", summarize(q, answers))
		}
	}
	fmt.Println()

	if values.IsPlaceholder(content) {
		fmt.Println("No values were generated for these answers.")
		fmt.Println()
	}
	if len(findings) > 0 {
		fmt.Println("Lint")
		fmt.Println("----")
		for _, f := range findings {
			fmt.Printf("  - %s\n", f)
		}
		fmt.Println()
	}

	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Preview the manifests:")
	fmt.Printf("     c8values render -f %s\n", outputPath)
	fmt.Println()
	fmt.Println("  3. Install Camunda 8:")
	fmt.Println("     helm repo add camunda https://helm.camunda.io")
	fmt.Printf("     helm install camunda camunda/camunda-platform -f %s\n", outputPath)
	fmt.Println()

	for _, hint := range checkTools().Hints() {
		fmt.Printf("  Note: %s\n", hint)
	}
}

// summarize renders one answer for the summary. Secrets are masked.
func summarize(q wizard.Question, answers wizard.Answers) string {
	switch q.Kind {
	case wizard.Secret:
		if answers.Text(q.ID) == "" {
			return "(empty)"
		}
		return "********"
	case wizard.MultiChoice:
		return strings.Join(answers.Choices(q.ID), ", ")
	case wizard.FieldList:
		n := len(answers.Fields(q.ID))
		if n == 1 {
			return "1 entry"
		}
		return fmt.Sprintf("%d entries", n)
	default:
		return answers.Text(q.ID)
	}
}
