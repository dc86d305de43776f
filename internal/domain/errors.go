package domain

import "errors"

// Describe failures. ErrToolNotFound and ErrDescribeUnavailable are expected
// and make resolution fall back to the baseline; ErrSpawn is an environment
// fault and is returned to the caller.
var (
	ErrToolNotFound        = errors.New("source control tool not found")
	ErrDescribeUnavailable = errors.New("describe output unavailable")
	ErrSpawn               = errors.New("failed to spawn source control tool")
)

// ErrToolVersionUnavailable means the tool ran but its version could not be read.
var ErrToolVersionUnavailable = errors.New("source control tool version unavailable")
