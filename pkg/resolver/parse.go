package resolver

import (
	"encoding/json"
	"strings"
)

// ParseCandidates extracts a candidate list from raw model output. Models
// routinely wrap the JSON in code fences or prose, so this scans for the
// first balanced JSON array and decodes it tolerantly. Anything that cannot
// be decoded yields zero candidates; malformed resolver output is never an
// error at this layer, the caller simply has nothing to execute.
func ParseCandidates(text string) []Candidate {
	raw := extractArray(text)
	if raw == "" {
		return nil
	}
	var items []struct {
		ActionName string         `json:"action_name"`
		Action     string         `json:"action"`
		Arguments  map[string]any `json:"arguments"`
		Parameters map[string]any `json:"parameters"`
		Reason     string         `json:"reason"`
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	var out []Candidate
	for _, it := range items {
		name := it.ActionName
		if name == "" {
			name = it.Action
		}
		if name == "" {
			continue
		}
		args := it.Arguments
		if args == nil {
			args = it.Parameters
		}
		out = append(out, Candidate{ActionName: name, Arguments: args, Reason: it.Reason})
	}
	return out
}

// extractArray returns the first balanced top-level JSON array in text,
// or "" if none is found. String literals and escapes are respected so
// brackets inside argument values do not break the scan.
func extractArray(text string) string {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
