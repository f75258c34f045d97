package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/c8values/internal/helm"
)

// saveAndRestoreRenderFactories saves and restores render factory functions.
func saveAndRestoreRenderFactories(t *testing.T) {
	origSpec := renderFromSpec
	origPath := renderFromPath
	t.Cleanup(func() {
		renderFromSpec = origSpec
		renderFromPath = origPath
	})
}

func TestRender_FromRepository(t *testing.T) {
	saveAndRestoreRenderFactories(t)

	var gotSpec helm.ChartSpec
	var gotVals helm.Values
	renderFromSpec = func(_ context.Context, _ *helm.Renderer, spec helm.ChartSpec, vals helm.Values) ([]byte, error) {
		gotSpec = spec
		gotVals = vals
		return []byte("# Source: camunda-platform/templates/x.yaml\nkind: ConfigMap\n"), nil
	}
	renderFromPath = func(*helm.Renderer, string, helm.Values) ([]byte, error) {
		t.Fatal("local chart must not be used")
		return nil, nil
	}

	path := writeTemp(t, "values.yaml", "webModelerPostgresql:\n  enabled: false\n")

	var err error
	output := captureOutput(func() {
		err = Render(context.Background(), RenderOptions{ValuesPaths: []string{path}, ChartVersion: "11.2.0", Release: "camunda", Namespace: "camunda"})
	})
	require.NoError(t, err)

	assert.Equal(t, "11.2.0", gotSpec.Version)
	assert.Equal(t, helm.CamundaPlatform.Name, gotSpec.Name)
	assert.Equal(t, helm.Values{"webModelerPostgresql": map[string]any{"enabled": false}}, gotVals)
	assert.Contains(t, output, "kind: ConfigMap")
}

func TestRender_LocalChart(t *testing.T) {
	saveAndRestoreRenderFactories(t)

	var gotPath string
	renderFromPath = func(_ *helm.Renderer, path string, _ helm.Values) ([]byte, error) {
		gotPath = path
		return []byte("kind: Service\n"), nil
	}

	path := writeTemp(t, "values.yaml", commentOnlyValues)

	output := captureOutput(func() {
		require.NoError(t, Render(context.Background(), RenderOptions{ValuesPaths: []string{path}, ChartPath: "./chart"}))
	})
	assert.Equal(t, "./chart", gotPath)
	assert.Equal(t, "kind: Service\n", output)
}

const commentOnlyValues = "# nothing\n"

func TestRender_Errors(t *testing.T) {
	saveAndRestoreRenderFactories(t)

	renderFromSpec = func(context.Context, *helm.Renderer, helm.ChartSpec, helm.Values) ([]byte, error) {
		return nil, errors.New("repository unreachable")
	}

	err := Render(context.Background(), RenderOptions{ValuesPaths: []string{writeTemp(t, "values.yaml", commentOnlyValues)}})
	assert.EqualError(t, err, "repository unreachable")

	err = Render(context.Background(), RenderOptions{ValuesPaths: []string{writeTemp(t, "values.yaml", "a: [b")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse values file")

	err = Render(context.Background(), RenderOptions{ValuesPaths: []string{"/does/not/exist.yaml"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read values file")
}

func TestRender_MergesValuesFiles(t *testing.T) {
	saveAndRestoreRenderFactories(t)

	var gotVals helm.Values
	renderFromPath = func(_ *helm.Renderer, _ string, vals helm.Values) ([]byte, error) {
		gotVals = vals
		return nil, nil
	}

	base := writeTemp(t, "values.yaml", "zeebe:\n  clusterSize: 3\n  partitionCount: 3\n")
	override := writeTemp(t, "override.yaml", "zeebe:\n  clusterSize: 1\n")

	captureOutput(func() {
		require.NoError(t, Render(context.Background(), RenderOptions{ValuesPaths: []string{base, override}, ChartPath: "./chart"}))
	})
	assert.Equal(t, helm.Values{"zeebe": helm.Values{"clusterSize": 1, "partitionCount": 3}}, gotVals)
}

func TestRender_ShowValues(t *testing.T) {
	saveAndRestoreRenderFactories(t)

	renderFromSpec = func(context.Context, *helm.Renderer, helm.ChartSpec, helm.Values) ([]byte, error) {
		t.Fatal("chart must not be rendered")
		return nil, nil
	}

	base := writeTemp(t, "values.yaml", "global:\n  elasticsearch:\n    enabled: true\n")
	override := writeTemp(t, "override.yaml", "global:\n  elasticsearch:\n    enabled: false\n")

	output := captureOutput(func() {
		require.NoError(t, Render(context.Background(), RenderOptions{ValuesPaths: []string{base, override}, ShowValues: true}))
	})
	assert.Equal(t, "global:\n  elasticsearch:\n    enabled: false\n", output)
}
