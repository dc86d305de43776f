package domain

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// Triple is the numeric major.minor.bugfix part of a version.
type Triple struct {
	Major  int
	Minor  int
	Bugfix int
}

// String returns the dotted form of the triple.
func (t Triple) String() string {
	return fmt.Sprintf("%d.%d.%d", t.Major, t.Minor, t.Bugfix)
}

// Version is an immutable version value. Commits and Hash are set only when
// the version was enriched from source control on a non-tagged commit.
type Version struct {
	triple  Triple
	commits int
	hash    string
}

// NewBaseline parses a statically declared version such as "0.12.0" or "v0.12.0".
func NewBaseline(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid baseline version %q: %w", s, err)
	}
	return &Version{triple: Triple{
		Major:  int(v.Major()),
		Minor:  int(v.Minor()),
		Bugfix: int(v.Patch()),
	}}, nil
}

// MustBaseline is like NewBaseline but panics on error.
func MustBaseline(s string) *Version {
	v, err := NewBaseline(s)
	if err != nil {
		panic(err)
	}
	return v
}

// NewEnrichedVersion builds a version carrying a commit count and abbreviated hash.
func NewEnrichedVersion(t Triple, commits int, hash string) *Version {
	return &Version{triple: t, commits: commits, hash: hash}
}

// Triple returns the numeric part of the version.
func (v *Version) Triple() Triple {
	return v.triple
}

// Commits returns the number of commits since the tag, or 0.
func (v *Version) Commits() int {
	return v.commits
}

// Hash returns the abbreviated revision hash, or "".
func (v *Version) Hash() string {
	return v.hash
}

// Enriched reports whether the version carries a commit suffix.
func (v *Version) Enriched() bool {
	return v.hash != ""
}

// String renders major.minor.bugfix, with -commits-hash appended when enriched.
func (v *Version) String() string {
	if !v.Enriched() {
		return v.triple.String()
	}
	return fmt.Sprintf("%s-%d-%s", v.triple, v.commits, v.hash)
}

// Compare compares the numeric triples of two versions.
func (v *Version) Compare(other *Version) int {
	a := semver.New(uint64(v.triple.Major), uint64(v.triple.Minor), uint64(v.triple.Bugfix), "", "")
	b := semver.New(uint64(other.triple.Major), uint64(other.triple.Minor), uint64(other.triple.Bugfix), "", "")
	return a.Compare(b)
}

// describePattern is the grammar of `git describe --tags` output:
//
//	major.minor.bugfix[<anything>-<commits>-[g]<8 hex-ish chars>]
//
// The commit count and hash only appear on non-tagged commits and always
// appear together. The match is unanchored so prefixes like "v" are skipped.
var describePattern = regexp.MustCompile(
	`(?P<major>\d{1,2})\.(?P<minor>\d{1,2})\.(?P<bugfix>\d{1,2})` +
		`(?:.*-(?P<noc>\d+)-g?(?P<sha>[a-z0-9]{8}))?`,
)

// ParseDescribe parses describe output. ok is false when the output does not
// match the grammar.
func ParseDescribe(out string) (v *Version, ok bool) {
	m := describePattern.FindStringSubmatch(out)
	if m == nil {
		return nil, false
	}
	group := func(name string) string {
		return m[describePattern.SubexpIndex(name)]
	}
	var t Triple
	var err error
	if t.Major, err = strconv.Atoi(group("major")); err != nil {
		return nil, false
	}
	if t.Minor, err = strconv.Atoi(group("minor")); err != nil {
		return nil, false
	}
	if t.Bugfix, err = strconv.Atoi(group("bugfix")); err != nil {
		return nil, false
	}
	sha := group("sha")
	if sha == "" {
		return &Version{triple: t}, true
	}
	commits, err := strconv.Atoi(group("noc"))
	if err != nil {
		return nil, false
	}
	return NewEnrichedVersion(t, commits, sha), true
}
