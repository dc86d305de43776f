package repository

import "context"

// GitRepository defines the in-process Git operations used for version
// resolution.

type GitRepository interface {
	// Describe renders output in the same format as `git describe --tags --abbrev=8`.
	Describe(ctx context.Context, dir string) (string, error)
}
