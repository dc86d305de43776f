package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/compozy/versioninfo/internal/config"
	"github.com/compozy/versioninfo/internal/logger"
	"github.com/compozy/versioninfo/internal/repository"
	"github.com/compozy/versioninfo/internal/service"
	"github.com/compozy/versioninfo/internal/usecase"
	"github.com/compozy/versioninfo/pkg/version"
)

// productName labels the first line of the versions report.
const productName = "versioninfo"

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config

	gitBinSvc service.GitBinaryService
	resolveUC *usecase.ResolveVersionUseCase
}

// flagOverrides carries command-line values that take precedence over config.
type flagOverrides struct {
	repoDir  string
	backend  string
	logLevel string
}

func (o flagOverrides) apply(cfg *config.Config) {
	if o.repoDir != "" {
		cfg.RepoDir = o.repoDir
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
}

// newContainer creates a new container with all the dependencies. fs only
// backs config loading; the repository is always read from the host.
func newContainer(fs repository.FileSystemRepository, overrides flagOverrides, stderr io.Writer) (*container, error) {
	cfg, err := config.LoadConfig(fs, ".")
	if err != nil {
		return nil, err
	}
	overrides.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log := logger.New(stderr, level)

	gitBinSvc := service.NewGitDescribeService(cfg.GitBinary, cfg.DescribeTimeout)

	var describer service.DescribeService = gitBinSvc
	if cfg.Backend == config.BackendGoGit {
		describer = repository.NewGitRepository()
	}

	// Describe the checkout this binary was built from, not the caller's cwd.
	repoDir := cfg.RepoDir
	if repoDir == "" {
		repoDir = version.SourceDir()
	}

	return &container{
		cfg:       cfg,
		gitBinSvc: gitBinSvc,
		resolveUC: &usecase.ResolveVersionUseCase{
			Describer: describer,
			RepoDir:   repoDir,
			Logger:    log,
		},
	}, nil
}

// reportUseCase builds the versions report for an already resolved version.
func (c *container) reportUseCase(resolved string) *usecase.ReportVersionsUseCase {
	return &usecase.ReportVersionsUseCase{
		Name:         productName,
		Version:      resolved,
		Dependencies: usecase.DefaultDependencies(debug.ReadBuildInfo, c.gitBinSvc),
	}
}
