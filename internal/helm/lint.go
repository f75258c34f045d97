package helm

import (
	"fmt"
	"slices"
	"strings"

	"helm.sh/helm/v3/pkg/chartutil"
)

// Finding is one lint remark about a values document.
type Finding struct {
	Path    string
	Message string
}

func (f Finding) String() string {
	return f.Path + ": " + f.Message
}

// LintReport summarizes a values document.
type LintReport struct {
	// Empty is true when the document holds no keys at all.
	Empty    bool
	Leaves   int
	Findings []Finding
}

// Lint parses data the way Helm reads a values file and reports empty
// leaves. Parse failures are returned as errors.
func Lint(data []byte) (LintReport, error) {
	vals, err := chartutil.ReadValues(data)
	if err != nil {
		return LintReport{}, fmt.Errorf("failed to parse values: %w", err)
	}

	report := LintReport{Empty: len(vals) == 0}
	walkLeaves("", map[string]any(vals), &report)
	return report, nil
}

func walkLeaves(prefix string, m map[string]any, report *LintReport) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		checkLeaf(path, m[k], report)
	}
}

func checkLeaf(path string, v any, report *LintReport) {
	switch val := v.(type) {
	case map[string]any:
		if len(val) == 0 {
			report.Findings = append(report.Findings, Finding{Path: path, Message: "empty map"})
			return
		}
		walkLeaves(path, val, report)
	case []any:
		if len(val) == 0 {
			report.Findings = append(report.Findings, Finding{Path: path, Message: "empty list"})
			return
		}
		for i, item := range val {
			checkLeaf(fmt.Sprintf("%s[%d]", path, i), item, report)
		}
	case nil:
		report.Leaves++
		report.Findings = append(report.Findings, Finding{Path: path, Message: "no value"})
	case string:
		report.Leaves++
		if strings.TrimSpace(val) == "" {
			report.Findings = append(report.Findings, Finding{Path: path, Message: "empty string"})
		}
	default:
		report.Leaves++
	}
}
