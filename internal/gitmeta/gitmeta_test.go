package gitmeta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://example.com/inful/docfxgen.git"},
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestResolve_RemoteAndBranch(t *testing.T) {
	dir := initRepo(t)

	info, err := Resolve(dir)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/inful/docfxgen.git", info.Repo)
	require.Equal(t, "master", info.Branch)
}

func TestResolve_DetectsDotGitInSubdir(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	info, err := Resolve(sub)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/inful/docfxgen.git", info.Repo)
}

func TestResolve_NotARepo(t *testing.T) {
	_, err := Resolve(t.TempDir())
	require.Error(t, err)
}

func TestResolve_NoOrigin(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = Resolve(dir)
	require.Error(t, err)
}
