package helm

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/repo"

	"github.com/imamik/c8values/internal/util/retry"
)

var (
	memoryCacheMu sync.Mutex
	memoryCache   = make(map[string]*chart.Chart)
)

// findChartURL resolves the archive URL of a chart. Replaced in tests.
var findChartURL = func(spec ChartSpec, getters getter.Providers) (string, error) {
	return repo.FindChartInRepoURL(spec.Repository, spec.Name, spec.Version, "", "", "", getters)
}

// fetchRetry tunes retries of repository lookups and downloads. Replaced in tests.
var fetchRetry = []retry.Option{retry.WithAttempts(3), retry.WithDelay(time.Second)}

// GetCachePath returns the directory holding downloaded chart archives.
func GetCachePath() string {
	return getCachePath()
}

func getCachePath() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "c8values", "charts")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".cache", "c8values", "charts")
	}
	return filepath.Join(os.TempDir(), "c8values", "charts")
}

// ClearMemoryCache forgets charts loaded during this process.
func ClearMemoryCache() {
	memoryCacheMu.Lock()
	defer memoryCacheMu.Unlock()
	memoryCache = make(map[string]*chart.Chart)
}

func clearCache() error {
	ClearMemoryCache()
	return os.RemoveAll(getCachePath())
}

// DownloadChart returns the chart described by spec, using the in-memory
// and on-disk caches before going to the repository.
func DownloadChart(ctx context.Context, spec ChartSpec) (*chart.Chart, error) {
	key := spec.cacheKey()

	memoryCacheMu.Lock()
	cached, ok := memoryCache[key]
	memoryCacheMu.Unlock()
	if ok {
		return cached, nil
	}

	archive := filepath.Join(getCachePath(), key)
	if _, err := os.Stat(archive); err == nil {
		if ch, err := loadChartFromPath(archive); err == nil {
			remember(key, ch)
			return ch, nil
		}
		// Corrupt cache entry, fetch again.
		_ = os.Remove(archive)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	getters := getter.All(cli.New())
	var buf *bytes.Buffer
	err := retry.Do(ctx, func(context.Context) error {
		var err error
		buf, err = fetchArchive(spec, getters)
		return err
	}, fetchRetry...)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(getCachePath(), 0750); err != nil {
		return nil, fmt.Errorf("failed to create chart cache: %w", err)
	}
	if err := os.WriteFile(archive, buf.Bytes(), 0600); err != nil {
		return nil, fmt.Errorf("failed to cache chart: %w", err)
	}

	ch, err := loadChartFromPath(archive)
	if err != nil {
		return nil, err
	}
	remember(key, ch)
	return ch, nil
}

func fetchArchive(spec ChartSpec, getters getter.Providers) (*bytes.Buffer, error) {
	chartURL, err := findChartURL(spec, getters)
	if err != nil {
		return nil, fmt.Errorf("failed to find chart %s in repo %s: %w", spec.Name, spec.Repository, err)
	}

	u, err := url.Parse(chartURL)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("invalid chart url %q: %w", chartURL, err))
	}
	g, err := getters.ByScheme(u.Scheme)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("no getter for %q: %w", chartURL, err))
	}
	buf, err := g.Get(chartURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", chartURL, err)
	}
	return buf, nil
}

func remember(key string, ch *chart.Chart) {
	memoryCacheMu.Lock()
	defer memoryCacheMu.Unlock()
	memoryCache[key] = ch
}

func loadChartFromPath(path string) (*chart.Chart, error) {
	ch, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart from %s: %w", path, err)
	}
	return ch, nil
}
