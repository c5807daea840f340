package context

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when no git repository encloses the directory.
var ErrNotRepository = errors.New("not a git repository")

// Context holds resolved repository information.
type Context struct {
	RepoRoot string
	// HeadBranch is the branch HEAD points to. It is set for an unborn HEAD
	// too, and empty when HEAD is detached.
	HeadBranch string
	HasCommits bool
}

// Resolver resolves repository context from git metadata.
type Resolver struct {
	dir string
}

// NewResolver creates a Resolver looking for a repository at or above dir.
func NewResolver(dir string) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve resolves the full repository context.
func (r *Resolver) Resolve() (*Context, error) {
	repo, err := git.PlainOpenWithOptions(r.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, ErrNotRepository
	}
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	repoRoot, err := resolveRepoRoot(repo)
	if err != nil {
		return nil, err
	}

	headBranch, err := resolveHeadBranch(repo)
	if err != nil {
		return nil, err
	}

	hasCommits, err := resolveHasCommits(repo)
	if err != nil {
		return nil, err
	}

	return &Context{
		RepoRoot:   repoRoot,
		HeadBranch: headBranch,
		HasCommits: hasCommits,
	}, nil
}

func resolveRepoRoot(repo *git.Repository) (string, error) {
	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return "", fmt.Errorf("bare repositories have no working tree")
	}
	if err != nil {
		return "", fmt.Errorf("resolving working tree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// resolveHeadBranch reads HEAD without following it, so an unborn branch
// still reports its name.
func resolveHeadBranch(repo *git.Repository) (string, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference || !ref.Target().IsBranch() {
		return "", nil
	}
	return ref.Target().Short(), nil
}

func resolveHasCommits(repo *git.Repository) (bool, error) {
	_, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolving HEAD: %w", err)
	}
	return true, nil
}
