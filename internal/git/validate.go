package git

import (
	"fmt"
	"strings"
)

// InvalidNameError reports why a name cannot be used as a git branch name.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid branch name '%s': %s", e.Name, e.Reason)
}

type nameRule struct {
	check  func(string) bool
	reason string
}

// refRules mirror the subset of git check-ref-format that matters for
// names typed by hand.
var refRules = []nameRule{
	{func(n string) bool { return strings.TrimSpace(n) == "" }, "this is required"},
	{func(n string) bool { return strings.ContainsAny(n, " \t") }, "must not contain whitespace"},
	{func(n string) bool {
		return strings.ContainsFunc(n, func(r rune) bool { return r < 0x20 || r == 0x7f })
	}, "must not contain control characters"},
	{func(n string) bool { return strings.ContainsAny(n, "~^*?[\\") }, "must not contain any of ~ ^ * ? [ \\"},
	{func(n string) bool { return strings.Contains(n, ":") }, "must not contain ':'"},
	{func(n string) bool { return strings.Contains(n, "..") }, "must not contain '..'"},
	{func(n string) bool { return strings.Contains(n, "@{") || n == "@" }, "must not contain '@{'"},
	{func(n string) bool { return strings.HasPrefix(n, "-") }, "must not start with '-'"},
	{func(n string) bool { return strings.HasPrefix(n, ".") || strings.Contains(n, "/.") }, "components must not start with '.'"},
	{func(n string) bool { return strings.HasSuffix(n, ".") }, "must not end with '.'"},
	{func(n string) bool { return strings.HasPrefix(n, "/") || strings.HasSuffix(n, "/") }, "must not start or end with '/'"},
	{func(n string) bool { return strings.Contains(n, "//") }, "must not contain '//'"},
	{func(n string) bool { return strings.HasSuffix(n, ".lock") }, "must not end with '.lock'"},
}

// ValidateBranchName checks that a name is usable as a local git branch.
// It returns an *InvalidNameError describing the first rule that fails.
func ValidateBranchName(name string) error {
	for _, r := range refRules {
		if r.check(name) {
			return &InvalidNameError{Name: name, Reason: r.reason}
		}
	}
	return nil
}
