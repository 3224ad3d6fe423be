package resolver

import "testing"

func TestParseCandidatesPlainArray(t *testing.T) {
	got := ParseCandidates(`[{"action_name":"read_file","arguments":{"path":"notes.txt"},"reason":"user asked"}]`)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].ActionName != "read_file" || got[0].Arguments["path"] != "notes.txt" {
		t.Fatalf("got %+v", got[0])
	}
}

func TestParseCandidatesFencedAndWrapped(t *testing.T) {
	text := "Sure! Here is the plan:\n```json\n[{\"action_name\":\"list_directory\",\"arguments\":{\"path\":\".\"}}]\n```\nLet me know."
	got := ParseCandidates(text)
	if len(got) != 1 || got[0].ActionName != "list_directory" {
		t.Fatalf("got %v", got)
	}
}

func TestParseCandidatesLegacyKeys(t *testing.T) {
	got := ParseCandidates(`[{"action":"write_file","parameters":{"path":"a.txt","content":"hi"}}]`)
	if len(got) != 1 || got[0].ActionName != "write_file" {
		t.Fatalf("got %v", got)
	}
	if got[0].Arguments["content"] != "hi" {
		t.Fatalf("got %+v", got[0])
	}
}

func TestParseCandidatesBracketsInsideStrings(t *testing.T) {
	got := ParseCandidates(`[{"action_name":"write_file","arguments":{"path":"a.txt","content":"array: [1, 2]"}}]`)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].Arguments["content"] != "array: [1, 2]" {
		t.Fatalf("got %+v", got[0])
	}
}

func TestParseCandidatesMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"no json here",
		"[{broken",
		`{"action_name":"read_file"}`, // object, not array
		`["just", "strings"]`,
	} {
		if got := ParseCandidates(text); len(got) != 0 {
			t.Fatalf("text %q: got %v", text, got)
		}
	}
}

func TestParseCandidatesSkipsNameless(t *testing.T) {
	got := ParseCandidates(`[{"arguments":{"path":"a.txt"}},{"action_name":"read_file","arguments":{"path":"b.txt"}}]`)
	if len(got) != 1 || got[0].Arguments["path"] != "b.txt" {
		t.Fatalf("got %v", got)
	}
}
