package helm

// ChartSpec identifies a chart in a Helm repository.
type ChartSpec struct {
	Repository string
	Name       string
	Version    string
}

// CamundaPlatform is the chart the generated values target.
var CamundaPlatform = ChartSpec{
	Repository: "https://helm.camunda.io",
	Name:       "camunda-platform",
	Version:    "12.0.0",
}

// WithVersion returns a copy of the spec pinned to version. An empty
// version keeps the default.
func (s ChartSpec) WithVersion(version string) ChartSpec {
	if version != "" {
		s.Version = version
	}
	return s
}

// cacheKey names the cached archive for this spec.
func (s ChartSpec) cacheKey() string {
	return s.Name + "-" + s.Version + ".tgz"
}
