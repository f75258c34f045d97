// Package prerequisites checks for the client tools needed to install the
// generated values into a cluster.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Tool is a client binary looked up in PATH.
type Tool struct {
	Name       string
	Required   bool
	Purpose    string
	InstallURL string
}

// InstallTools returns the tools used to install Camunda 8 with the
// generated values. helm is required; kubectl only helps with inspection.
func InstallTools() []Tool {
	return []Tool{
		{
			Name:       "helm",
			Required:   true,
			Purpose:    "installs the camunda-platform chart",
			InstallURL: "https://helm.sh/docs/intro/install/",
		},
		{
			Name:       "kubectl",
			Purpose:    "inspects the deployed pods",
			InstallURL: "https://kubernetes.io/docs/tasks/tools/",
		},
	}
}

// Result is the outcome of looking up one tool.
type Result struct {
	Tool  Tool
	Found bool
	Path  string
}

// Results holds the outcome of a [Check].
type Results struct {
	Results []Result
	Missing []Tool
}

// HasErrors reports whether a required tool is missing.
func (r *Results) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error lists missing required tools, or returns nil.
func (r *Results) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Hints returns one line per missing tool telling where to get it.
func (r *Results) Hints() []string {
	hints := make([]string, 0, len(r.Missing))
	for _, tool := range r.Missing {
		hints = append(hints, fmt.Sprintf("%s not found in PATH (%s): %s", tool.Name, tool.Purpose, tool.InstallURL))
	}
	return hints
}

// Check looks up each tool in PATH.
func Check(tools []Tool) *Results {
	results := &Results{}
	for _, tool := range tools {
		result := Result{Tool: tool}
		if path, err := lookPath(tool.Name); err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}
		results.Results = append(results.Results, result)
	}
	return results
}

// CheckInstall checks [InstallTools].
func CheckInstall() *Results {
	return Check(InstallTools())
}
