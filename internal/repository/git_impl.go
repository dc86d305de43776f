package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/compozy/versioninfo/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// abbrevLength matches the --abbrev=8 passed to the git binary.
const abbrevLength = 8

// gitRepository is the go-git implementation of the GitRepository interface.

type gitRepository struct{}

// NewGitRepository creates a new GitRepository.
func NewGitRepository() GitRepository {
	return &gitRepository{}
}

// open opens the repository containing dir, searching parent directories.
func (r *gitRepository) open(dir string) (*git.Repository, error) {
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open git repository: %v", domain.ErrDescribeUnavailable, err)
	}
	return repo, nil
}

// tagsByCommit maps each tagged commit to the names of its tags.
func (r *gitRepository) tagsByCommit(repo *git.Repository) (map[plumbing.Hash][]string, error) {
	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	tags := make(map[plumbing.Hash][]string)
	if err := tagRefs.ForEach(func(ref *plumbing.Reference) error {
		hash, err := r.resolveTagCommit(repo, ref)
		if err != nil {
			return nil // Skip tags that do not point at a commit
		}
		tags[hash] = append(tags[hash], ref.Name().Short())
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

// resolveTagCommit resolves a tag reference to its commit hash.
func (r *gitRepository) resolveTagCommit(repo *git.Repository, tagRef *plumbing.Reference) (plumbing.Hash, error) {
	// Try as lightweight tag first
	if commit, err := repo.CommitObject(tagRef.Hash()); err == nil {
		return commit.Hash, nil
	}
	// Try as annotated tag
	if tagObj, err := repo.TagObject(tagRef.Hash()); err == nil {
		if commit, err := repo.CommitObject(tagObj.Target); err == nil {
			return commit.Hash, nil
		}
	}
	return plumbing.Hash{}, fmt.Errorf("failed to resolve commit for tag")
}

// nearestTag walks history from HEAD and returns the first tagged commit's
// tag together with the number of commits walked before reaching it.
func (r *gitRepository) nearestTag(ctx context.Context, repo *git.Repository) (string, int, plumbing.Hash, error) {
	head, err := repo.Head()
	if err != nil {
		return "", 0, plumbing.ZeroHash, fmt.Errorf("%w: failed to get HEAD: %v", domain.ErrDescribeUnavailable, err)
	}
	tags, err := r.tagsByCommit(repo)
	if err != nil {
		return "", 0, plumbing.ZeroHash, fmt.Errorf("%w: %v", domain.ErrDescribeUnavailable, err)
	}
	if len(tags) == 0 {
		return "", 0, head.Hash(), fmt.Errorf("%w: no tags found", domain.ErrDescribeUnavailable)
	}
	commits, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return "", 0, plumbing.ZeroHash, fmt.Errorf("%w: failed to get commits: %v", domain.ErrDescribeUnavailable, err)
	}
	defer commits.Close()
	var (
		count int
		found string
	)
	err = commits.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if names, ok := tags[c.Hash]; ok {
			sort.Strings(names)
			found = names[len(names)-1]
			return storer.ErrStop
		}
		count++
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return "", 0, plumbing.ZeroHash, fmt.Errorf("%w: failed to iterate commits: %v", domain.ErrDescribeUnavailable, err)
	}
	if found == "" {
		return "", 0, head.Hash(), fmt.Errorf("%w: no tag reachable from HEAD", domain.ErrDescribeUnavailable)
	}
	return found, count, head.Hash(), nil
}

// Describe returns "<tag>" when HEAD is tagged and "<tag>-<n>-g<hash>" otherwise.
func (r *gitRepository) Describe(ctx context.Context, dir string) (string, error) {
	repo, err := r.open(dir)
	if err != nil {
		return "", err
	}
	tag, count, head, err := r.nearestTag(ctx, repo)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return tag, nil
	}
	return fmt.Sprintf("%s-%d-g%s", tag, count, head.String()[:abbrevLength]), nil
}
