package flow

import "slices"

// BranchPool is the set of existing branch names still available to claim.
// It is a value: Remove returns a narrowed pool and leaves the receiver as is.
type BranchPool struct {
	names []string
}

// FromExisting builds a pool from branch names in discovery order.
// Empty and repeated names are dropped.
func FromExisting(names []string) BranchPool {
	seen := make(map[string]struct{}, len(names))
	pool := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		pool = append(pool, n)
	}
	return BranchPool{names: pool}
}

// Remove returns the pool without name. Removing an absent name is a no-op.
func (p BranchPool) Remove(name string) BranchPool {
	if !p.Contains(name) {
		return p
	}
	rest := make([]string, 0, len(p.names)-1)
	for _, n := range p.names {
		if n != name {
			rest = append(rest, n)
		}
	}
	return BranchPool{names: rest}
}

// Contains reports whether name is still available.
func (p BranchPool) Contains(name string) bool {
	return slices.Contains(p.names, name)
}

// IsEmpty reports whether no names are left.
func (p BranchPool) IsEmpty() bool {
	return len(p.names) == 0
}

// Len returns the number of names left.
func (p BranchPool) Len() int {
	return len(p.names)
}

// Choices returns the remaining names in discovery order.
func (p BranchPool) Choices() []string {
	return slices.Clone(p.names)
}
