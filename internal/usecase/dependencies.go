package usecase

import (
	"context"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/compozy/versioninfo/internal/domain"
	"github.com/compozy/versioninfo/internal/service"
)

// BuildInfoReader matches debug.ReadBuildInfo.
type BuildInfoReader func() (*debug.BuildInfo, bool)

// linkedModules lists the Go modules looked up for the report, in report order.
var linkedModules = []struct {
	name   string
	module string
}{
	{"cobra", "github.com/spf13/cobra"},
	{"viper", "github.com/spf13/viper"},
	{"afero", "github.com/spf13/afero"},
	{"zap", "go.uber.org/zap"},
	{"go-git", "github.com/go-git/go-git/v5"},
	{"semver", "github.com/Masterminds/semver/v3"},
	{"go-pretty", "github.com/jedib0t/go-pretty/v6"},
}

// DefaultDependencies returns the static dependency table: the linked Go
// modules followed by the external git executable.
func DefaultDependencies(readBuildInfo BuildInfoReader, tool service.ToolVersionService) []domain.DependencySpec {
	deps := make([]domain.DependencySpec, 0, len(linkedModules)+1)
	for _, m := range linkedModules {
		deps = append(deps, domain.DependencySpec{
			Name:   m.name,
			Module: m.module,
			Lookup: ModuleAccessor(readBuildInfo, m.module),
		})
	}
	deps = append(deps, domain.DependencySpec{
		Name:   "git",
		Module: "git",
		Lookup: ToolAccessor(tool),
	})
	return deps
}

// ModuleAccessor reads the version of module from the binary's build info,
// honoring replace directives.
func ModuleAccessor(readBuildInfo BuildInfoReader, module string) domain.Accessor {
	return func(context.Context) (domain.VersionValue, bool) {
		if readBuildInfo == nil {
			return domain.VersionValue{}, false
		}
		info, ok := readBuildInfo()
		if !ok || info == nil {
			return domain.VersionValue{}, false
		}
		for _, dep := range info.Deps {
			if dep.Path != module {
				continue
			}
			if dep.Replace != nil && dep.Replace.Version != "" {
				return domain.TextVersion(dep.Replace.Version), true
			}
			return domain.TextVersion(dep.Version), dep.Version != ""
		}
		return domain.VersionValue{}, false
	}
}

// ToolVersionParts splits a dotted version into numeric parts, falling back
// to text when a part is not a number.
func ToolVersionParts(s string) (domain.VersionValue, bool) {
	fields := strings.Split(s, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return domain.TextVersion(s), s != ""
		}
		parts = append(parts, n)
	}
	return domain.PartsVersion(parts...), true
}

// ToolAccessor reports the version of the source control executable.
func ToolAccessor(tool service.ToolVersionService) domain.Accessor {
	return func(ctx context.Context) (domain.VersionValue, bool) {
		if tool == nil {
			return domain.VersionValue{}, false
		}
		v, err := tool.ToolVersion(ctx)
		if err != nil {
			return domain.VersionValue{}, false
		}
		return ToolVersionParts(v)
	}
}
