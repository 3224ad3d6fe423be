package resolver

import (
	"context"
	"testing"

	"github.com/actonlabs/acton/pkg/action"
)

func fileCatalog() []action.Definition {
	return []action.Definition{
		{Name: "read_file"},
		{Name: "write_file"},
		{Name: "list_directory"},
		{Name: "delete_file"},
	}
}

func TestKeywordRead(t *testing.T) {
	got, err := KeywordResolver{}.Resolve(context.Background(), "please read the file notes.txt", fileCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ActionName != "read_file" {
		t.Fatalf("got %v", got)
	}
	if got[0].Arguments["path"] != "notes.txt" {
		t.Fatalf("got %+v", got[0])
	}
}

func TestKeywordWriteWithContent(t *testing.T) {
	got, err := KeywordResolver{}.Resolve(context.Background(), "create a file log.txt with the content: hello world", fileCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ActionName != "write_file" {
		t.Fatalf("got %v", got)
	}
	if got[0].Arguments["path"] != "log.txt" || got[0].Arguments["content"] != "hello world" {
		t.Fatalf("got %+v", got[0])
	}
}

func TestKeywordList(t *testing.T) {
	got, err := KeywordResolver{}.Resolve(context.Background(), "list the directory", fileCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ActionName != "list_directory" {
		t.Fatalf("got %v", got)
	}
}

func TestKeywordOnlyProposesCatalogActions(t *testing.T) {
	// catalog without read_file: the read phrasing must produce nothing
	got, err := KeywordResolver{}.Resolve(context.Background(), "read the file notes.txt", []action.Definition{{Name: "list_directory"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestKeywordNothingActionable(t *testing.T) {
	got, err := KeywordResolver{}.Resolve(context.Background(), "what is the weather like", fileCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
