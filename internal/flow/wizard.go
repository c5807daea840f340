package flow

import (
	"context"

	"github.com/wasabi0522/dxflow/internal/prompt"
)

//go:generate moq -out flow_mock.go . BranchLister

// BranchLister reads the local branch names of the repository.
type BranchLister interface {
	ListBranches(ctx context.Context) ([]string, error)
}

// Logger receives debug traces of the decisions taken by the wizard.
type Logger interface {
	Debug(msg string, args ...any)
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Wizard.
type Option func(*Wizard)

// WithLogger sets the logger for decision traces.
func WithLogger(l Logger) Option {
	return func(w *Wizard) { w.logger = l }
}

// Wizard asks the questions that establish the branching convention of a
// repository. It only reads the repository; applying and persisting the
// result is left to the caller.
type Wizard struct {
	branches BranchLister
	prompt   prompt.Prompter
	logger   Logger
}

// NewWizard creates a Wizard reading branches from b and asking through p.
func NewWizard(b BranchLister, p prompt.Prompter, opts ...Option) *Wizard {
	w := &Wizard{branches: b, prompt: p, logger: nopLogger{}}
	for _, o := range opts {
		o(w)
	}
	return w
}

// ResolveConfiguration runs the whole wizard. It either returns a complete
// configuration or an error; nothing partial is ever returned.
func (w *Wizard) ResolveConfiguration(ctx context.Context) (*GitConfig, error) {
	existing, err := w.branches.ListBranches(ctx)
	if err != nil {
		return nil, &ListBranchesError{Err: err}
	}
	pool := FromExisting(existing)
	if pool.IsEmpty() {
		w.prompt.Notify(msgNoBranchesYet)
	}

	total, err := w.prompt.Number(ctx, prompt.Number{
		Message:  msgTotalCodebases,
		Default:  1,
		Validate: prompt.Positive,
	})
	if err != nil {
		return nil, err
	}
	if total < 1 {
		return nil, &InconsistentStateError{Detail: "codebase count must be positive"}
	}

	var branches []Codebase
	for index := 1; index <= total; index++ {
		var cb Codebase
		cb, pool, err = w.resolveCodebase(ctx, index, pool, branches)
		if err != nil {
			return nil, err
		}
		w.logger.Debug("resolved codebase", "codebase", index, "production", cb.Production, "develop", cb.Develop, "prefix", cb.Prefix)
		branches = append(branches, cb)
	}

	w.prompt.Notify(msgNameConventions)
	prefixes, err := w.resolveSupportPrefixes(ctx)
	if err != nil {
		return nil, err
	}

	return &GitConfig{Prefixes: prefixes, Branches: branches}, nil
}
