package git

import (
	"context"
	"strings"

	"github.com/wasabi0522/dxflow/internal/exec"
)

var _ Client = (*client)(nil)

const branchRefPrefix = "refs/heads/"

type client struct {
	exec exec.Executor
}

// NewClient creates a git Client backed by the given Executor.
// The executor decides which directory the commands run in.
func NewClient(exec exec.Executor) Client {
	return &client{exec: exec}
}

// ListBranches returns local branch names in the order git reports them.
// Only refs under refs/heads/ are listed, so a detached HEAD or a tag sharing
// a branch name never shows up. An unborn repository yields no branches and
// no error.
func (c *client) ListBranches(ctx context.Context) ([]string, error) {
	out, err := c.exec.Output(ctx, "git", "for-each-ref", "--format=%(refname)", branchRefPrefix)
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	var branches []string
	for line := range strings.SplitSeq(out, "\n") {
		name, ok := strings.CutPrefix(strings.TrimSpace(line), branchRefPrefix)
		if ok && name != "" {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

func (c *client) BranchExists(ctx context.Context, name string) (bool, error) {
	err := c.exec.Run(ctx, "git", "show-ref", "--verify", "--quiet", branchRefPrefix+name)
	if err == nil {
		return true, nil
	}
	if exec.IsExitCode(err, 1) {
		return false, nil
	}
	return false, err
}

func (c *client) CreateBranch(ctx context.Context, name string) error {
	return c.exec.Run(ctx, "git", "branch", "--", name)
}

func (c *client) Checkout(ctx context.Context, name string) error {
	return c.exec.Run(ctx, "git", "switch", name)
}

func (c *client) Init(ctx context.Context) error {
	return c.exec.Run(ctx, "git", "init")
}

func (c *client) AddAll(ctx context.Context) error {
	return c.exec.Run(ctx, "git", "add", ".")
}

// Commit records the index as a new commit. Empty commits are allowed so a
// freshly initialised repository always ends up with a HEAD to branch from.
func (c *client) Commit(ctx context.Context, message string) error {
	return c.exec.Run(ctx, "git", "commit", "--allow-empty", "-m", message)
}
