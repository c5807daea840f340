package flow

import "fmt"

// InconsistentStateError reports a resolver call made out of sequence, such as
// resolving a develop branch before the production branch of the same codebase.
// No valid configuration can be derived once it occurs.
type InconsistentStateError struct {
	Detail string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent wizard state: %s", e.Detail)
}

// ListBranchesError reports that the existing branches could not be read.
// It is kept distinct from an empty repository, which is not an error.
type ListBranchesError struct {
	Err error
}

func (e *ListBranchesError) Error() string {
	return fmt.Sprintf("listing branches: %v", e.Err)
}

func (e *ListBranchesError) Unwrap() error {
	return e.Err
}
