package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/c8values/internal/helm"
	"github.com/imamik/c8values/internal/logging"
)

// Factory function variables for render - can be replaced in tests.
var (
	renderFromSpec = func(ctx context.Context, r *helm.Renderer, spec helm.ChartSpec, vals helm.Values) ([]byte, error) {
		return r.RenderFromSpec(ctx, spec, vals)
	}
	renderFromPath = func(r *helm.Renderer, path string, vals helm.Values) ([]byte, error) {
		return r.RenderFromPath(path, vals)
	}
)

// RenderOptions holds the flags of the render command.
type RenderOptions struct {
	ValuesPaths  []string
	ShowValues   bool
	ChartPath    string
	ChartVersion string
	Release      string
	Namespace    string
}

// Render templates the camunda-platform chart, or a local chart, with one
// or more values files and prints the manifests. Later files take
// precedence, as with helm install -f.
func Render(ctx context.Context, opts RenderOptions) error {
	log := logging.FromContext(ctx).WithName("render")

	vals, err := mergeValuesFiles(opts.ValuesPaths)
	if err != nil {
		return err
	}

	if opts.ShowValues {
		out, err := vals.ToYAML()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	r := helm.NewRenderer(opts.Release, opts.Namespace)

	var manifests []byte
	if opts.ChartPath != "" {
		log.V(1).Info("rendering local chart", "path", opts.ChartPath)
		manifests, err = renderFromPath(r, opts.ChartPath, vals)
	} else {
		spec := helm.CamundaPlatform.WithVersion(opts.ChartVersion)
		log.V(1).Info("rendering chart", "repository", spec.Repository, "chart", spec.Name, "version", spec.Version)
		manifests, err = renderFromSpec(ctx, r, spec, vals)
	}
	if err != nil {
		return err
	}

	fmt.Print(string(manifests))
	return nil
}

func mergeValuesFiles(paths []string) (helm.Values, error) {
	layers := make([]helm.Values, 0, len(paths))
	for _, path := range paths {
		data, err := readFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read values file: %w", err)
		}
		vals, err := helm.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse values file %s: %w", path, err)
		}
		layers = append(layers, vals)
	}
	return helm.DeepMerge(layers...), nil
}
