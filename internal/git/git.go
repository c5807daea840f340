package git

import "context"

//go:generate moq -out git_mock.go . Client

// BranchReader abstracts read-only branch operations.
type BranchReader interface {
	ListBranches(ctx context.Context) ([]string, error)
	BranchExists(ctx context.Context, name string) (bool, error)
}

// BranchWriter abstracts branch creation and checkout.
type BranchWriter interface {
	CreateBranch(ctx context.Context, name string) error
	Checkout(ctx context.Context, name string) error
}

// RepositoryWriter abstracts repository-level write operations.
type RepositoryWriter interface {
	Init(ctx context.Context) error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
}

// Client abstracts git operations for testing.
type Client interface {
	BranchReader
	BranchWriter
	RepositoryWriter
}
