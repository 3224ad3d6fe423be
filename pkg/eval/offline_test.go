package eval

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/actonlabs/acton/pkg/action"
	"github.com/actonlabs/acton/pkg/resolver"
)

func fileCatalog() []action.Definition {
	return []action.Definition{
		{Name: "read_file"},
		{Name: "write_file"},
		{Name: "list_directory"},
		{Name: "delete_file"},
	}
}

func TestEvaluateResolver(t *testing.T) {
	fsys := fstest.MapFS{
		"cases/read.json": &fstest.MapFile{Data: []byte(`{
			"name": "read",
			"utterance": "please read the file notes.txt",
			"expect": {"actions": ["read_file"], "forbid": ["delete_file"]}
		}`)},
		"cases/none.json": &fstest.MapFile{Data: []byte(`{
			"name": "none",
			"utterance": "how is the weather",
			"expect": {"actions": []}
		}`)},
		"cases/wrong.json": &fstest.MapFile{Data: []byte(`{
			"name": "wrong",
			"utterance": "list the files",
			"expect": {"actions": ["read_file"]}
		}`)},
		"cases/ignored.txt": &fstest.MapFile{Data: []byte("not a fixture")},
	}
	score, total, passed, details, err := EvaluateResolver(
		context.Background(), resolver.KeywordResolver{}, fileCatalog(), fsys, "cases")
	if err != nil {
		t.Fatal(err)
	}
	if total != 3 || passed != 2 {
		t.Fatalf("total=%d passed=%d details=%v", total, passed, details)
	}
	if score <= 0.6 || score >= 0.7 {
		t.Fatalf("score=%v", score)
	}
	if len(details) == 0 {
		t.Fatal("expected a detail for the failing fixture")
	}
}

func TestEvaluateResolverEmptyDir(t *testing.T) {
	fsys := fstest.MapFS{"cases/.keep": &fstest.MapFile{}}
	score, total, _, _, err := EvaluateResolver(
		context.Background(), resolver.KeywordResolver{}, fileCatalog(), fsys, "cases")
	if err != nil {
		t.Fatal(err)
	}
	if score != 1 || total != 0 {
		t.Fatalf("score=%v total=%d", score, total)
	}
}

func TestEvaluateResolverBadFixture(t *testing.T) {
	fsys := fstest.MapFS{
		"cases/bad.json": &fstest.MapFile{Data: []byte("{not json")},
	}
	if _, _, _, _, err := EvaluateResolver(
		context.Background(), resolver.KeywordResolver{}, fileCatalog(), fsys, "cases"); err == nil {
		t.Fatal("expected parse error")
	}
}
