// Package prompt manages versioned instruction prompts for the intent
// resolver. Operators can override the built-in resolution instructions;
// every override is linted before it is accepted and kept as a new version
// so changes stay reviewable.
package prompt

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Prompt is one versioned instruction text.
type Prompt struct {
	Name    string
	Version int
	Body    string
	Meta    map[string]string
}

// Issue describes a lint finding.
type Issue struct {
	Rule    string
	Message string
}

// Lint checks an instruction prompt before it is accepted. Prompts are sent
// verbatim to third-party model APIs, so secret-like content is rejected.
func Lint(p Prompt) []Issue {
	var issues []Issue
	if p.Name == "" {
		issues = append(issues, Issue{Rule: "name.required", Message: "name is required"})
	}
	if len(p.Body) == 0 {
		issues = append(issues, Issue{Rule: "body.required", Message: "body is empty"})
	}
	if containsSecretLike(p.Body) {
		issues = append(issues, Issue{Rule: "security.secrets", Message: "body appears to contain secret-like content"})
	}
	if !strings.Contains(strings.ToLower(p.Body), "json") {
		issues = append(issues, Issue{Rule: "contract.json", Message: "body does not state the JSON output contract"})
	}
	return issues
}

var secretMarkers = []string{"aws_secret_access_key", "begin private key", "sk-"}

func containsSecretLike(s string) bool {
	ls := strings.ToLower(s)
	for _, m := range secretMarkers {
		if strings.Contains(ls, m) {
			return true
		}
	}
	return false
}

// Store is an in-memory versioned prompt store.
type Store struct {
	mu   sync.RWMutex
	data map[string][]Prompt // name -> versions, ascending
}

func NewStore() *Store { return &Store{data: make(map[string][]Prompt)} }

var ErrLintFailed = errors.New("prompt failed lint checks")

// Save lints and adds a new version. An existing name increments by 1,
// a new name starts at 1. Lint failures return ErrLintFailed plus the
// issues.
func (s *Store) Save(p Prompt) (Prompt, []Issue, error) {
	issues := Lint(p)
	if len(issues) > 0 {
		return Prompt{}, issues, ErrLintFailed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	versions := s.data[p.Name]
	next := 1
	if len(versions) > 0 {
		next = versions[len(versions)-1].Version + 1
	}
	np := Prompt{Name: p.Name, Version: next, Body: p.Body, Meta: p.Meta}
	s.data[p.Name] = append(versions, np)
	return np, nil, nil
}

// Get retrieves a specific version; version 0 means latest.
func (s *Store) Get(name string, version int) (Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	versions := s.data[name]
	if len(versions) == 0 {
		return Prompt{}, false
	}
	if version <= 0 {
		return versions[len(versions)-1], true
	}
	i := sort.Search(len(versions), func(i int) bool { return versions[i].Version >= version })
	if i < len(versions) && versions[i].Version == version {
		return versions[i], true
	}
	return Prompt{}, false
}

// List returns all versions for a name in ascending order.
func (s *Store) List(name string) []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Prompt(nil), s.data[name]...)
}
