package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/compozy/versioninfo/internal/domain"
	"github.com/compozy/versioninfo/internal/service"
	"go.uber.org/zap"
)

// staleTagsHint is logged when the describe triple disagrees with the baseline.
const staleTagsHint = "In order to get the proper version with the git hash you need to update " +
	"your local git tags. Something like: 'git fetch --tags' or 'git fetch --tags upstream'. " +
	"The version string WILL NOT include the git hash."

// ResolveVersionUseCase contains the logic for resolving the effective version.

type ResolveVersionUseCase struct {
	Describer service.DescribeService
	RepoDir   string
	Logger    *zap.Logger
}

// Execute returns the describe-enriched version when its triple matches the
// baseline, and the baseline otherwise. Only spawn faults are returned as errors.
func (uc *ResolveVersionUseCase) Execute(ctx context.Context, baseline *domain.Version) (*domain.Version, error) {
	log := uc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out, err := uc.Describer.Describe(ctx, uc.RepoDir)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrToolNotFound):
		return baseline, nil
	case errors.Is(err, domain.ErrDescribeUnavailable):
		log.Debug("describe unavailable, using baseline", zap.Error(err))
		return baseline, nil
	default:
		return nil, fmt.Errorf("failed to describe repository: %w", err)
	}
	parsed, ok := domain.ParseDescribe(out)
	if !ok {
		log.Debug("describe output not recognized, using baseline", zap.String("output", out))
		return baseline, nil
	}
	if parsed.Compare(baseline) != 0 {
		log.Warn(staleTagsHint,
			zap.Stringer("baseline", baseline.Triple()),
			zap.Stringer("describe", parsed.Triple()),
		)
		return baseline, nil
	}
	return parsed, nil
}
