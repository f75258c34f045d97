package helm

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/engine"
)

// Renderer renders a chart release with provided values.
type Renderer struct {
	releaseName string
	namespace   string
}

// NewRenderer creates a renderer for a release in namespace.
func NewRenderer(releaseName, namespace string) *Renderer {
	return &Renderer{
		releaseName: releaseName,
		namespace:   namespace,
	}
}

// RenderFromSpec downloads the chart and renders it with values.
func (r *Renderer) RenderFromSpec(ctx context.Context, spec ChartSpec, values Values) ([]byte, error) {
	loadedChart, err := DownloadChart(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to download chart: %w", err)
	}

	manifests, err := r.renderChart(loadedChart, values)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return manifests, nil
}

// RenderFromPath renders a chart directory or archive with values.
func (r *Renderer) RenderFromPath(chartPath string, values Values) ([]byte, error) {
	loadedChart, err := loadChartFromPath(chartPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart: %w", err)
	}

	manifests, err := r.renderChart(loadedChart, values)
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return manifests, nil
}

// renderChart uses the helm engine to render the chart with values.
func (r *Renderer) renderChart(ch *chart.Chart, values Values) ([]byte, error) {
	chartDefaults := make(Values)
	if len(ch.Values) > 0 {
		chartDefaults = Values(ch.Values)
	}

	// Nested chart defaults must survive partial overrides.
	merged := DeepMerge(chartDefaults, values)

	releaseOptions := chartutil.ReleaseOptions{
		Name:      r.releaseName,
		Namespace: r.namespace,
		IsInstall: true,
	}

	capabilities := chartutil.DefaultCapabilities.Copy()
	capabilities.KubeVersion.Version = "v1.31.0"
	capabilities.KubeVersion.Major = "1"
	capabilities.KubeVersion.Minor = "31"

	valuesToRender, err := chartutil.ToRenderValues(ch, chartutil.Values(merged.ToMap()), releaseOptions, capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare values: %w", err)
	}

	eng := engine.Engine{}
	rendered, err := eng.Render(ch, valuesToRender)
	if err != nil {
		return nil, fmt.Errorf("failed to render templates: %w", err)
	}

	// Map iteration order is random; sort for stable output.
	names := make([]string, 0, len(rendered))
	for name := range rendered {
		names = append(names, name)
	}
	slices.Sort(names)

	var combined bytes.Buffer
	for _, name := range names {
		if filepath.Base(name) == "NOTES.txt" {
			continue
		}
		trimmed := strings.TrimSpace(rendered[name])
		if trimmed == "" {
			continue
		}
		if combined.Len() > 0 {
			combined.WriteString("\n---\n")
		}
		combined.WriteString("# Source: " + name + "\n")
		combined.WriteString(trimmed)
		combined.WriteString("\n")
	}

	return combined.Bytes(), nil
}
