package usecase

import (
	"context"
	"fmt"
	"iter"
	"runtime"

	"github.com/compozy/versioninfo/internal/domain"
)

const notInstalled = "not installed"

// ReportEntry is one label/value row of the versions report.
type ReportEntry struct {
	Label string
	Value string
}

// ReportVersionsUseCase builds the versions report: the product version, the
// Go runtime version, then one row per dependency in declaration order.

type ReportVersionsUseCase struct {
	Name         string
	Version      string
	Dependencies []domain.DependencySpec
	// RuntimeVersion defaults to runtime.Version.
	RuntimeVersion func() string
}

func (uc *ReportVersionsUseCase) runtimeVersion() string {
	if uc.RuntimeVersion != nil {
		return uc.RuntimeVersion()
	}
	return runtime.Version()
}

// labels returns every label in report order.
func (uc *ReportVersionsUseCase) labels() []string {
	labels := make([]string, 0, len(uc.Dependencies)+2)
	labels = append(labels, uc.Name, "Go")
	for _, dep := range uc.Dependencies {
		labels = append(labels, dep.Name)
	}
	return labels
}

// Width is the label column width: the longest label plus one.
func (uc *ReportVersionsUseCase) Width() int {
	width := 0
	for _, l := range uc.labels() {
		width = max(width, len(l))
	}
	return width + 1
}

// Entries looks up every dependency and returns the rows in report order.
func (uc *ReportVersionsUseCase) Entries(ctx context.Context) []ReportEntry {
	var entries []ReportEntry
	for e := range uc.entries(ctx) {
		entries = append(entries, e)
	}
	return entries
}

func (uc *ReportVersionsUseCase) entries(ctx context.Context) iter.Seq[ReportEntry] {
	return func(yield func(ReportEntry) bool) {
		if !yield(ReportEntry{Label: uc.Name, Value: uc.Version}) {
			return
		}
		if !yield(ReportEntry{Label: "Go", Value: uc.runtimeVersion()}) {
			return
		}
		for _, dep := range uc.Dependencies {
			value := notInstalled
			if dep.Lookup != nil {
				if v, ok := dep.Lookup(ctx); ok && v.String() != "" {
					value = v.String()
				}
			}
			if !yield(ReportEntry{Label: dep.Name, Value: value}) {
				return
			}
		}
	}
}

// Report returns the report as aligned "label: value" lines. Dependencies are
// looked up lazily as the sequence is consumed; each call starts a fresh pass.
func (uc *ReportVersionsUseCase) Report(ctx context.Context) iter.Seq[string] {
	return func(yield func(string) bool) {
		width := uc.Width()
		for e := range uc.entries(ctx) {
			if !yield(fmt.Sprintf("%*s: %s", width, e.Label, e.Value)) {
				return
			}
		}
	}
}
