package domain

import (
	"context"
	"strconv"
	"strings"
)

// VersionValue is a dependency version as read by an Accessor. Some sources
// report plain text, others report numeric parts.
type VersionValue struct {
	Text  string
	Parts []int
}

// TextVersion wraps a textual version.
func TextVersion(s string) VersionValue {
	return VersionValue{Text: s}
}

// PartsVersion wraps a version made of numeric parts.
func PartsVersion(parts ...int) VersionValue {
	return VersionValue{Parts: parts}
}

// String returns the text, or the parts joined with ".".
func (v VersionValue) String() string {
	if v.Text != "" || len(v.Parts) == 0 {
		return v.Text
	}
	s := make([]string, len(v.Parts))
	for i, p := range v.Parts {
		s[i] = strconv.Itoa(p)
	}
	return strings.Join(s, ".")
}

// Accessor reads the version of one dependency. ok is false when the
// dependency is unavailable.
type Accessor func(ctx context.Context) (v VersionValue, ok bool)

// DependencySpec describes one optional dependency to look up for the report.
type DependencySpec struct {
	// Name is the label shown in the report.
	Name string
	// Module is the lookup key, e.g. a Go module path or an executable name.
	Module string
	Lookup Accessor
}
