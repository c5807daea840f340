package flow

import (
	"fmt"
	"strings"
)

// Role identifies one of the two long-lived branches of a codebase.
type Role int

const (
	// RoleProduction is the branch production releases are cut from.
	RoleProduction Role = iota
	// RoleDevelop is the integration branch for ongoing development.
	RoleDevelop
)

var roleStrings = [...]string{
	RoleProduction: "production",
	RoleDevelop:    "develop",
}

// String returns the string representation of the Role.
func (r Role) String() string {
	if int(r) < len(roleStrings) {
		return roleStrings[r]
	}
	return "unknown"
}

// DefaultName returns the conventional branch name suggested for the role.
func (r Role) DefaultName() string {
	if r == RoleProduction {
		return "master"
	}
	return "develop"
}

// SupportRole identifies a kind of short-lived support branch.
type SupportRole int

const (
	Feature SupportRole = iota
	Release
	Hotfix
)

// SupportRoles lists the support roles in the order they are configured.
var SupportRoles = []SupportRole{Feature, Release, Hotfix}

var supportRoleStrings = [...]string{
	Feature: "feature",
	Release: "release",
	Hotfix:  "hotfix",
}

// String returns the string representation of the SupportRole.
func (r SupportRole) String() string {
	if int(r) < len(supportRoleStrings) {
		return supportRoleStrings[r]
	}
	return "unknown"
}

// Codebase is the long-lived branch pair of one line of development.
// Prefix namespaces the support branches of every codebase after the first;
// it is empty for the first codebase.
type Codebase struct {
	Production string `koanf:"production" json:"production"`
	Develop    string `koanf:"develop" json:"develop"`
	Prefix     string `koanf:"prefix" json:"prefix,omitempty"`
}

// SupportPrefixes holds the name prefixes of short-lived support branches.
type SupportPrefixes struct {
	Feature string `koanf:"feature" json:"feature"`
	Release string `koanf:"release" json:"release"`
	Hotfix  string `koanf:"hotfix" json:"hotfix"`
}

// Get returns the prefix configured for role.
func (p SupportPrefixes) Get(role SupportRole) string {
	switch role {
	case Feature:
		return p.Feature
	case Release:
		return p.Release
	case Hotfix:
		return p.Hotfix
	}
	return ""
}

// set stores prefix for role.
func (p *SupportPrefixes) set(role SupportRole, prefix string) {
	switch role {
	case Feature:
		p.Feature = prefix
	case Release:
		p.Release = prefix
	case Hotfix:
		p.Hotfix = prefix
	}
}

// Normalized returns the prefixes with NormalizePrefix applied to every
// non-empty value.
func (p SupportPrefixes) Normalized() SupportPrefixes {
	for _, role := range SupportRoles {
		if v := p.Get(role); v != "" {
			p.set(role, NormalizePrefix(v))
		}
	}
	return p
}

// GitConfig is the branching convention of a repository.
type GitConfig struct {
	Prefixes SupportPrefixes `koanf:"prefixes" json:"prefixes"`
	Branches []Codebase      `koanf:"branches" json:"branches"`
}

// DefaultCheckout returns the branch to check out once the convention is applied.
func (c *GitConfig) DefaultCheckout() string {
	if len(c.Branches) == 0 {
		return ""
	}
	return c.Branches[0].Develop
}

// Validate checks the structural invariants of the configuration.
func (c *GitConfig) Validate() error {
	if len(c.Branches) == 0 {
		return fmt.Errorf("at least one codebase is required")
	}
	for i, cb := range c.Branches {
		n := i + 1
		if cb.Production == "" {
			return fmt.Errorf("codebase %d: production branch is required", n)
		}
		if cb.Develop == "" {
			return fmt.Errorf("codebase %d: develop branch is required", n)
		}
		if n == 1 && cb.Prefix != "" {
			return fmt.Errorf("codebase 1 must not define a prefix")
		}
		if n > 1 && cb.Prefix == "" {
			return fmt.Errorf("codebase %d: prefix is required", n)
		}
	}
	for _, role := range SupportRoles {
		p := c.Prefixes.Get(role)
		if p == "" {
			return fmt.Errorf("%s prefix is required", role)
		}
		if NormalizePrefix(p) != p {
			return fmt.Errorf("%s prefix must end with a single '/': %s", role, p)
		}
	}
	return nil
}

// NormalizePrefix makes prefix end with exactly one '/'.
// It is idempotent.
func NormalizePrefix(prefix string) string {
	return strings.TrimRight(prefix, "/") + "/"
}
