package flow

import (
	"context"
	"fmt"

	"github.com/wasabi0522/dxflow/internal/git"
	"github.com/wasabi0522/dxflow/internal/prompt"
)

// AnswerKind tells how a branch choice was answered.
type AnswerKind int

const (
	// UseExisting claims an existing branch from the pool.
	UseExisting AnswerKind = iota
	// SameAsProduction reuses the production branch of the same codebase.
	SameAsProduction
	// EnterNew asks for a branch name to be typed in.
	EnterNew
)

// BranchAnswer is one option of the branch choice question. Name is only set
// for UseExisting, so a real branch called "[other]" is never mistaken for
// the synthetic option.
type BranchAnswer struct {
	Kind AnswerKind
	Name string
}

// Label returns the text shown for the option.
func (a BranchAnswer) Label() string {
	switch a.Kind {
	case SameAsProduction:
		return labelSameAsProduction
	case EnterNew:
		return labelOther
	}
	return a.Name
}

// branchOptions lists the pool followed by the synthetic options for role.
func branchOptions(role Role, pool BranchPool) []BranchAnswer {
	names := pool.Choices()
	opts := make([]BranchAnswer, 0, len(names)+2)
	for _, n := range names {
		opts = append(opts, BranchAnswer{Kind: UseExisting, Name: n})
	}
	if role == RoleDevelop {
		opts = append(opts, BranchAnswer{Kind: SameAsProduction})
	}
	return append(opts, BranchAnswer{Kind: EnterNew})
}

// defaultOption picks the existing branch literally named after the role,
// falling back to EnterNew.
func defaultOption(role Role, opts []BranchAnswer) int {
	other := len(opts) - 1
	for i, o := range opts {
		switch {
		case o.Kind == UseExisting && o.Name == role.DefaultName():
			return i
		case o.Kind == EnterNew:
			other = i
		}
	}
	return other
}

// defaultNameTaken reports whether the conventional name for role was already
// used as a production or develop value. current holds the codebase being
// resolved, whose production half may already be known.
func defaultNameTaken(role Role, resolved []Codebase, current Codebase) bool {
	name := role.DefaultName()
	for _, cb := range append(resolved[:len(resolved):len(resolved)], current) {
		if cb.Production == name || cb.Develop == name {
			return true
		}
	}
	return false
}

// chooseBranch asks which pooled branch to use for role.
func (w *Wizard) chooseBranch(ctx context.Context, role Role, index int, pool BranchPool) (BranchAnswer, error) {
	opts := branchOptions(role, pool)
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label()
	}
	i, err := w.prompt.Select(ctx, prompt.Select{
		Message: chooseMessage(role, index),
		Options: labels,
		Default: defaultOption(role, opts),
	})
	if err != nil {
		return BranchAnswer{}, err
	}
	if i < 0 || i >= len(opts) {
		return BranchAnswer{}, &InconsistentStateError{Detail: fmt.Sprintf("selection %d out of %d options", i, len(opts))}
	}
	return opts[i], nil
}

// enterBranch asks for a branch name to be typed in.
func (w *Wizard) enterBranch(ctx context.Context, role Role, index int, resolved []Codebase, current Codebase) (string, error) {
	q := prompt.Input{
		Message:  nameMessage(role, index),
		Validate: git.ValidateBranchName,
	}
	if !defaultNameTaken(role, resolved, current) {
		q.Default = role.DefaultName()
	}
	return w.prompt.Input(ctx, q)
}

// resolveBranch resolves the branch name for one role of codebase index.
// production is required for RoleDevelop and ignored for RoleProduction.
// It returns the name and the pool without it.
func (w *Wizard) resolveBranch(ctx context.Context, role Role, index int, production string, pool BranchPool, resolved []Codebase) (string, BranchPool, error) {
	var current Codebase
	if role == RoleDevelop {
		if production == "" {
			return "", pool, &InconsistentStateError{Detail: fmt.Sprintf("develop branch of codebase %d resolved before its production branch", index)}
		}
		current.Production = production
	}

	answer := BranchAnswer{Kind: EnterNew}
	if !pool.IsEmpty() {
		var err error
		answer, err = w.chooseBranch(ctx, role, index, pool)
		if err != nil {
			return "", pool, err
		}
	}

	switch answer.Kind {
	case UseExisting:
		w.logger.Debug("claimed existing branch", "codebase", index, "role", role, "branch", answer.Name)
		return answer.Name, pool.Remove(answer.Name), nil
	case SameAsProduction:
		if role != RoleDevelop {
			return "", pool, &InconsistentStateError{Detail: "production branch cannot reuse itself"}
		}
		return production, pool, nil
	}

	name, err := w.enterBranch(ctx, role, index, resolved, current)
	if err != nil {
		return "", pool, err
	}
	// A typed name matching a pooled branch claims it too, so later questions
	// never offer a branch that is already assigned.
	return name, pool.Remove(name), nil
}

// resolveCodebasePrefix asks for the support branch prefix of codebase index.
func (w *Wizard) resolveCodebasePrefix(ctx context.Context, index int) (string, error) {
	return w.prompt.Input(ctx, prompt.Input{
		Message:  msgCodebasePrefix,
		Default:  fmt.Sprintf("cb%d", index),
		Validate: git.ValidateBranchName,
	})
}

// resolveCodebase resolves codebase index: production, then develop, then the
// prefix when index > 1. It returns the codebase and the narrowed pool.
func (w *Wizard) resolveCodebase(ctx context.Context, index int, pool BranchPool, resolved []Codebase) (Codebase, BranchPool, error) {
	production, pool, err := w.resolveBranch(ctx, RoleProduction, index, "", pool, resolved)
	if err != nil {
		return Codebase{}, pool, err
	}
	develop, pool, err := w.resolveBranch(ctx, RoleDevelop, index, production, pool, resolved)
	if err != nil {
		return Codebase{}, pool, err
	}
	cb := Codebase{Production: production, Develop: develop}
	if index > 1 {
		if cb.Prefix, err = w.resolveCodebasePrefix(ctx, index); err != nil {
			return Codebase{}, pool, err
		}
	}
	return cb, pool, nil
}
