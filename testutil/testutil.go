package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t        *testing.T
	initial  string
	empty    bool
	branches []string
	files    map[string]string
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t, initial: "main", files: map[string]string{}}
}

// WithInitialBranch sets the branch HEAD points to after git init.
func (b *RepoBuilder) WithInitialBranch(name string) *RepoBuilder {
	b.initial = name
	return b
}

// WithBranch adds a branch to be created from the initial commit.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// WithFile writes an untracked file into the working tree.
func (b *RepoBuilder) WithFile(name, content string) *RepoBuilder {
	b.files[name] = content
	return b
}

// Empty skips the initial commit, leaving HEAD unborn and no branches.
func (b *RepoBuilder) Empty() *RepoBuilder {
	b.empty = true
	return b
}

// Build creates the repository and returns the root directory path.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := b.t.TempDir()

	run(b.t, dir, "git", "init", "-b", b.initial)
	run(b.t, dir, "git", "config", "user.email", "test@example.com")
	run(b.t, dir, "git", "config", "user.name", "Test")
	run(b.t, dir, "git", "config", "commit.gpgsign", "false")

	if !b.empty {
		readme := filepath.Join(dir, "README.md")
		if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil {
			b.t.Fatal(err)
		}
		run(b.t, dir, "git", "add", ".")
		run(b.t, dir, "git", "commit", "-m", "initial commit")

		created := map[string]bool{b.initial: true}
		for _, branch := range b.branches {
			if !created[branch] {
				run(b.t, dir, "git", "branch", branch)
				created[branch] = true
			}
		}
	}

	for name, content := range b.files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			b.t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			b.t.Fatal(err)
		}
	}

	return dir
}

// GitRepo creates a temporary git repository with an initial commit on main.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// EmptyGitRepo creates a temporary git repository without any commit.
func EmptyGitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Empty().Build()
}

// GitRepoWithBranches creates a temporary git repository with additional branches.
func GitRepoWithBranches(t *testing.T, branches ...string) string {
	t.Helper()
	b := NewRepo(t)
	for _, name := range branches {
		b.WithBranch(name)
	}
	return b.Build()
}

// Git runs git in dir and returns its trimmed output.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	return run(t, dir, "git", args...)
}

// Branches returns the local branch names of the repository in dir.
func Branches(t *testing.T, dir string) []string {
	t.Helper()
	out := Git(t, dir, "for-each-ref", "--format=%(refname)", "refs/heads/")
	if out == "" {
		return nil
	}
	var names []string
	for line := range strings.SplitSeq(out, "\n") {
		names = append(names, strings.TrimPrefix(line, "refs/heads/"))
	}
	return names
}

// CurrentBranch returns the branch HEAD points to, even when it is unborn.
func CurrentBranch(t *testing.T, dir string) string {
	t.Helper()
	return Git(t, dir, "symbolic-ref", "--short", "HEAD")
}

func run(t *testing.T, dir, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%s %v: %s: %v", name, args, out, err)
	}
	return strings.TrimSpace(string(out))
}
