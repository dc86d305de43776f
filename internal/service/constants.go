package service

import "time"

// Timeout constants for service operations
const (
	// DefaultDescribeTimeout bounds a single git describe invocation
	DefaultDescribeTimeout = 5 * time.Second
	// DefaultGitBinary is the executable looked up on PATH
	DefaultGitBinary = "git"
)
