package flow

import (
	"context"
	"strings"

	"github.com/wasabi0522/dxflow/internal/git"
	"github.com/wasabi0522/dxflow/internal/prompt"
)

// validateSupportPrefix accepts any answer that, once its trailing slashes are
// dropped, is itself a valid branch name.
func validateSupportPrefix(v string) error {
	return git.ValidateBranchName(strings.TrimRight(v, "/"))
}

// resolveSupportPrefix asks for the prefix of role and normalises it.
func (w *Wizard) resolveSupportPrefix(ctx context.Context, role SupportRole) (string, error) {
	v, err := w.prompt.Input(ctx, prompt.Input{
		Message:  supportMessage(role),
		Default:  role.String() + "/",
		Validate: validateSupportPrefix,
	})
	if err != nil {
		return "", err
	}
	return NormalizePrefix(v), nil
}

// resolveSupportPrefixes asks for every support prefix in SupportRoles order.
func (w *Wizard) resolveSupportPrefixes(ctx context.Context) (SupportPrefixes, error) {
	var prefixes SupportPrefixes
	for _, role := range SupportRoles {
		p, err := w.resolveSupportPrefix(ctx, role)
		if err != nil {
			return SupportPrefixes{}, err
		}
		prefixes.set(role, p)
	}
	return prefixes, nil
}
