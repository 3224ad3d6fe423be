package action

import (
	"sort"
	"sync"
)

// PermissionSet holds the permission tokens one actor currently has. Checks
// never mutate; Grant and Revoke take the exclusive lock and are expected to
// happen outside the execution hot path. Absence of a token always means
// denial.
type PermissionSet struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewPermissionSet creates a set holding the given tokens.
func NewPermissionSet(tokens ...string) *PermissionSet {
	ps := &PermissionSet{tokens: make(map[string]struct{}, len(tokens))}
	for _, t := range tokens {
		if t != "" {
			ps.tokens[t] = struct{}{}
		}
	}
	return ps
}

// Grant adds a token. Idempotent.
func (ps *PermissionSet) Grant(token string) {
	if token == "" {
		return
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.tokens[token] = struct{}{}
}

// Revoke removes a token. Idempotent.
func (ps *PermissionSet) Revoke(token string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	delete(ps.tokens, token)
}

// Has reports whether the token is granted.
func (ps *PermissionSet) Has(token string) bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	_, ok := ps.tokens[token]
	return ok
}

// Snapshot returns the granted tokens, sorted.
func (ps *PermissionSet) Snapshot() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make([]string, 0, len(ps.tokens))
	for t := range ps.tokens {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
