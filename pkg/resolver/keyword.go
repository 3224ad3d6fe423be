package resolver

import (
	"context"
	"regexp"
	"strings"

	"github.com/actonlabs/acton/pkg/action"
)

var filenameRe = regexp.MustCompile(`(\w+\.\w+)`)
var contentRe = regexp.MustCompile(`(?is)content[:\s]+(.+)`)

// KeywordResolver is a deterministic fallback used when no model is
// configured or the model call fails. It recognizes a small set of canned
// phrasings for the file actions and emits at most one candidate per
// recognized intent.
type KeywordResolver struct{}

// Resolve maps keyword patterns onto catalog actions. Only actions present
// in the catalog are ever proposed.
func (KeywordResolver) Resolve(_ context.Context, utterance string, catalog []action.Definition) ([]Candidate, error) {
	known := map[string]bool{}
	for _, d := range catalog {
		known[d.Name] = true
	}
	lower := strings.ToLower(utterance)
	var out []Candidate

	if known["read_file"] && containsAny(lower, "read", "show", "display") && containsAny(lower, "file", "content") {
		if m := filenameRe.FindString(utterance); m != "" {
			out = append(out, Candidate{
				ActionName: "read_file",
				Arguments:  map[string]any{"path": m},
				Reason:     "request to read a file",
			})
		}
	}

	if known["write_file"] && containsAny(lower, "write", "create", "save") && containsAny(lower, "file", "content") {
		if m := filenameRe.FindString(utterance); m != "" {
			content := "Default content"
			if cm := contentRe.FindStringSubmatch(utterance); cm != nil {
				content = strings.TrimSpace(cm[1])
			}
			out = append(out, Candidate{
				ActionName: "write_file",
				Arguments:  map[string]any{"path": m, "content": content},
				Reason:     "request to write a file",
			})
		}
	}

	if known["list_directory"] && containsAny(lower, "list", "directory", "files") && len(out) == 0 {
		out = append(out, Candidate{
			ActionName: "list_directory",
			Arguments:  map[string]any{"path": "."},
			Reason:     "request to list directory contents",
		})
	}

	return out, nil
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
