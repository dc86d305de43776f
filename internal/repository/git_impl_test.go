package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/compozy/versioninfo/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSignature = &object.Signature{
	Name:  "Test User",
	Email: "test@example.com",
}

func setupTestRepo(t *testing.T) (string, *git.Repository) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	commitFile(t, dir, repo, "test.txt")
	return dir, repo
}

// commitFile writes name into the worktree and commits it, returning the commit hash.
func commitFile(t *testing.T, dir string, repo *git.Repository, name string) plumbing.Hash {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0644)
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	sig := *testSignature
	sig.When = time.Now()
	hash, err := wt.Commit("Add "+name, &git.CommitOptions{Author: &sig})
	require.NoError(t, err)
	return hash
}

func annotatedTag(t *testing.T, repo *git.Repository, name string) {
	t.Helper()
	head, err := repo.Head()
	require.NoError(t, err)
	sig := *testSignature
	sig.When = time.Now()
	_, err = repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Message: "Release " + name,
		Tagger:  &sig,
	})
	require.NoError(t, err)
}

func TestGitRepository_Describe(t *testing.T) {
	ctx := context.Background()
	t.Run("Should return tag name when HEAD is tagged", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		annotatedTag(t, repo, "v0.12.0")
		out, err := NewGitRepository().Describe(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "v0.12.0", out)
	})
	t.Run("Should append commit count and abbreviated hash", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		annotatedTag(t, repo, "v0.12.0")
		commitFile(t, dir, repo, "a.txt")
		commitFile(t, dir, repo, "b.txt")
		last := commitFile(t, dir, repo, "c.txt")
		out, err := NewGitRepository().Describe(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("v0.12.0-3-g%s", last.String()[:8]), out)
		parsed, ok := domain.ParseDescribe(out)
		require.True(t, ok)
		assert.Equal(t, 3, parsed.Commits())
	})
	t.Run("Should use lightweight tags", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		head, err := repo.Head()
		require.NoError(t, err)
		_, err = repo.CreateTag("0.12.0", head.Hash(), nil)
		require.NoError(t, err)
		out, err := NewGitRepository().Describe(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "0.12.0", out)
	})
	t.Run("Should find repository from a subdirectory", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		annotatedTag(t, repo, "v1.0.0")
		sub := filepath.Join(dir, "nested", "pkg")
		require.NoError(t, os.MkdirAll(sub, 0755))
		out, err := NewGitRepository().Describe(ctx, sub)
		require.NoError(t, err)
		assert.Equal(t, "v1.0.0", out)
	})
	t.Run("Should be unavailable when no tags exist", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		_, err := NewGitRepository().Describe(ctx, dir)
		assert.ErrorIs(t, err, domain.ErrDescribeUnavailable)
	})
	t.Run("Should be unavailable outside a repository", func(t *testing.T) {
		_, err := NewGitRepository().Describe(ctx, t.TempDir())
		assert.ErrorIs(t, err, domain.ErrDescribeUnavailable)
	})
	t.Run("Should be unavailable for an empty repository", func(t *testing.T) {
		dir := t.TempDir()
		_, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		_, err = NewGitRepository().Describe(ctx, dir)
		assert.ErrorIs(t, err, domain.ErrDescribeUnavailable)
	})
}
