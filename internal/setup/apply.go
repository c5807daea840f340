package setup

import (
	"context"
	"errors"

	"github.com/wasabi0522/dxflow/internal/flow"
)

// bestEffort logs a warning if a best-effort operation fails.
// Does nothing if err is nil.
func (s *Service) bestEffort(op string, err error, args ...any) {
	if err == nil {
		return
	}
	s.logger.Warn("best-effort operation failed", append([]any{"op", op, "error", err}, args...)...)
}

// Apply creates the long-lived branches of cfg and checks out the develop
// branch of the first codebase. Every step is best effort: failures are
// recorded in the report and never stop the remaining steps.
func (s *Service) Apply(ctx context.Context, cfg *flow.GitConfig) (*Report, error) {
	if cfg == nil || len(cfg.Branches) == 0 {
		return nil, errors.New("no codebases to set up")
	}

	report := &Report{
		InitialCommit: s.commitAll(ctx),
		Codebases:     make([]CodebaseResult, 0, len(cfg.Branches)),
	}

	done := make(map[string]BranchResult)
	for _, cb := range cfg.Branches {
		report.Codebases = append(report.Codebases, CodebaseResult{
			Production: s.ensureBranch(ctx, cb.Production, done),
			Develop:    s.ensureBranch(ctx, cb.Develop, done),
			Prefix:     cb.Prefix,
		})
	}

	report.Checkout = s.checkout(ctx, cfg.DefaultCheckout())
	return report, nil
}

// commitAll stages the working tree and records the initial commit.
func (s *Service) commitAll(ctx context.Context) Status {
	if !s.initialCommit {
		return StatusSkipped
	}
	if err := s.git.AddAll(ctx); err != nil {
		s.bestEffort("AddAll", err)
		return StatusFailed
	}
	if err := s.git.Commit(ctx, InitialCommitMessage); err != nil {
		s.bestEffort("Commit", err)
		return StatusFailed
	}
	return StatusCreated
}

// ensureBranch creates name unless it exists. A name shared by several roles
// is handled once and reports the same result each time.
func (s *Service) ensureBranch(ctx context.Context, name string, done map[string]BranchResult) BranchResult {
	if r, ok := done[name]; ok {
		return r
	}
	r := s.createBranch(ctx, name)
	done[name] = r
	return r
}

func (s *Service) createBranch(ctx context.Context, name string) BranchResult {
	exists, err := s.git.BranchExists(ctx, name)
	if err != nil {
		s.bestEffort("BranchExists", err, "branch", name)
		return BranchResult{Name: name, Status: StatusFailed, Error: err.Error()}
	}
	if exists {
		return BranchResult{Name: name, Status: StatusExisting}
	}
	if err := s.git.CreateBranch(ctx, name); err != nil {
		s.bestEffort("CreateBranch", err, "branch", name)
		return BranchResult{Name: name, Status: StatusFailed, Error: err.Error()}
	}
	return BranchResult{Name: name, Status: StatusCreated}
}

func (s *Service) checkout(ctx context.Context, name string) BranchResult {
	if err := s.git.Checkout(ctx, name); err != nil {
		s.bestEffort("Checkout", err, "branch", name)
		return BranchResult{Name: name, Status: StatusFailed, Error: err.Error()}
	}
	return BranchResult{Name: name, Status: StatusCheckedOut}
}
