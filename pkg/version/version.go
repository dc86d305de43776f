package version

import (
	"context"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/compozy/versioninfo/internal/domain"
)

// Baseline is the version declared in the build. Release builds may override
// it with -ldflags "-X github.com/compozy/versioninfo/pkg/version.Baseline=...".
var (
	Baseline   = "0.12.0"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// SourceDir returns the directory this package was compiled from. Describing
// that directory, not the working directory, keeps another checkout's tags
// out of the version. Binaries built with -trimpath or moved to another host
// get a path that does not exist, and resolution falls back to the baseline.
func SourceDir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}

// Resolver turns the baseline into the effective version.
type Resolver interface {
	Execute(ctx context.Context, baseline *domain.Version) (*domain.Version, error)
}

var (
	mu       sync.Mutex
	resolved *domain.Version
)

// Resolve computes the effective version once per process and memoizes it.
// A failed resolution is not memoized.
func Resolve(ctx context.Context, r Resolver) (*domain.Version, error) {
	mu.Lock()
	defer mu.Unlock()
	if resolved != nil {
		return resolved, nil
	}
	baseline, err := domain.NewBaseline(Baseline)
	if err != nil {
		return nil, err
	}
	v, err := r.Execute(ctx, baseline)
	if err != nil {
		return nil, err
	}
	resolved = v
	return v, nil
}

// Reset forgets the memoized version so the next Resolve runs again.
func Reset() {
	mu.Lock()
	resolved = nil
	mu.Unlock()
}
