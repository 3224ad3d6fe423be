// Package eval provides offline evaluation harnesses for intent
// resolution: fixture scoring for resolvers and replay of captured turns
// for regression checks.
package eval

import (
	"context"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/resolver"
)

// Fixture represents one resolution evaluation case.
type Fixture struct {
	Name      string      `json:"name"`
	Utterance string      `json:"utterance"`
	Expect    Expectation `json:"expect"`
}

// Expectation constrains the candidate sequence a resolver produces.
type Expectation struct {
	// Actions is the exact expected candidate action sequence. An empty
	// list means the resolver must propose nothing.
	Actions []string `json:"actions"`
	// Forbid lists actions that must not appear among the candidates.
	Forbid []string `json:"forbid,omitempty"`
}

// EvaluateResolver loads fixtures from an fs.FS directory (json files),
// resolves each utterance against the catalog, and scores the expectations.
// Returns score in [0,1].
func EvaluateResolver(ctx context.Context, r resolver.Resolver, catalog []action.Definition, fsys fs.FS, dir string) (score float64, total int, passed int, details []string, err error) {
	fixtures, err := loadFixtures(fsys, dir)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	total = len(fixtures)
	if total == 0 {
		return 1, 0, 0, nil, nil
	}
	for _, fx := range fixtures {
		candidates, rerr := r.Resolve(ctx, fx.Utterance, catalog)
		if rerr != nil {
			details = append(details, fx.Name+": resolve error: "+rerr.Error())
			continue
		}
		got := make([]string, 0, len(candidates))
		for _, c := range candidates {
			got = append(got, c.ActionName)
		}
		ok := true
		if !equalStrings(got, fx.Expect.Actions) {
			ok = false
			details = append(details, fx.Name+": got ["+strings.Join(got, " ")+"] want ["+strings.Join(fx.Expect.Actions, " ")+"]")
		}
		for _, f := range fx.Expect.Forbid {
			for _, g := range got {
				if g == f {
					ok = false
					details = append(details, fx.Name+": forbidden action proposed: "+f)
				}
			}
		}
		if ok {
			passed++
		}
	}
	score = float64(passed) / float64(total)
	return score, total, passed, details, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func loadFixtures(fsys fs.FS, dir string) ([]Fixture, error) {
	var out []Fixture
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		b, err := fs.ReadFile(fsys, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		var fx Fixture
		if err := json.Unmarshal(b, &fx); err != nil {
			return nil, err
		}
		out = append(out, fx)
	}
	return out, nil
}
