package prompt

import (
	"bytes"
	"fmt"
	"strings"
)

// UnifiedDiff returns a line diff between two prompt bodies. The headers
// carry the labels so a reviewer can tell which prompt versions were
// compared, e.g. "--- resolver@v1" / "+++ resolver@v2".
func UnifiedDiff(fromLabel, toLabel, a, b string) string {
	if a == b {
		return ""
	}
	if fromLabel == "" {
		fromLabel = "a"
	}
	if toLabel == "" {
		toLabel = "b"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", fromLabel)
	fmt.Fprintf(&buf, "+++ %s\n", toLabel)
	al := strings.Split(a, "\n")
	bl := strings.Split(b, "\n")
	i, j := 0, 0
	for i < len(al) || j < len(bl) {
		if i < len(al) && j < len(bl) && al[i] == bl[j] {
			i++
			j++
			continue
		}
		if i < len(al) {
			fmt.Fprintf(&buf, "-%s\n", al[i])
			i++
		}
		if j < len(bl) {
			fmt.Fprintf(&buf, "+%s\n", bl[j])
			j++
		}
	}
	return buf.String()
}

// Diff returns the unified diff between two stored versions of a prompt,
// or "" when either version is missing.
func (s *Store) Diff(name string, v1, v2 int) string {
	p1, ok1 := s.Get(name, v1)
	p2, ok2 := s.Get(name, v2)
	if !ok1 || !ok2 {
		return ""
	}
	return UnifiedDiff(
		fmt.Sprintf("%s@v%d", name, v1),
		fmt.Sprintf("%s@v%d", name, v2),
		p1.Body, p2.Body,
	)
}
