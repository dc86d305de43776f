package service

import "context"

// DescribeService runs a "describe by tags" query against a repository.
type DescribeService interface {
	// Describe returns the trimmed describe output for the repository at dir.
	Describe(ctx context.Context, dir string) (string, error)
}

// ToolVersionService reports the version of the source control executable.
type ToolVersionService interface {
	ToolVersion(ctx context.Context) (string, error)
}
