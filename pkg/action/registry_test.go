package action

import (
	"context"
	"reflect"
	"testing"

	"github.com/actonlabs/acton/pkg/errmodel"
)

type namedAction struct {
	def Definition
}

func (a namedAction) Describe() Definition                                  { return a.def }
func (a namedAction) Validate(context.Context, Invocation) error            { return nil }
func (a namedAction) Execute(context.Context, Invocation) (any, error)      { return "ok", nil }

func defNamed(name string) Definition {
	return Definition{Name: name, Description: name + " action", Type: TypeRead}
}

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	a := namedAction{def: defNamed("read_file")}
	if err := r.Register(a); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get("read_file")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.(namedAction), a) {
		t.Fatal("Get should return the exact registered instance")
	}
}

func TestRegisterDuplicateKeepsOriginal(t *testing.T) {
	r := NewRegistry()
	first := namedAction{def: Definition{Name: "read_file", Description: "first"}}
	second := namedAction{def: Definition{Name: "read_file", Description: "second"}}
	if err := r.Register(first); err != nil {
		t.Fatal(err)
	}
	err := r.Register(second)
	if !errmodel.IsCode(err, errmodel.CodeDuplicateAction) {
		t.Fatalf("expected duplicate_action, got %v", err)
	}
	got, err := r.Get("read_file")
	if err != nil {
		t.Fatal(err)
	}
	if got.Describe().Description != "first" {
		t.Fatal("duplicate registration must leave the original in place")
	}
}

func TestGetUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("send_email")
	if !errmodel.IsCode(err, errmodel.CodeUnknownAction) {
		t.Fatalf("expected unknown_action, got %v", err)
	}
}

func TestGetIsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(namedAction{def: defNamed("read_file")}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("Read_File"); !errmodel.IsCode(err, errmodel.CodeUnknownAction) {
		t.Fatalf("lookup must be exact, got %v", err)
	}
}

func TestListOrderAndRestartability(t *testing.T) {
	r := NewRegistry()
	names := []string{"read_file", "write_file", "delete_file"}
	for _, n := range names {
		if err := r.Register(namedAction{def: defNamed(n)}); err != nil {
			t.Fatal(err)
		}
	}
	collect := func() []string {
		var out []string
		for d := range r.List() {
			out = append(out, d.Name)
		}
		return out
	}
	first := collect()
	second := collect()
	if len(first) != len(names) {
		t.Fatalf("got %d definitions, want %d", len(first), len(names))
	}
	for i := range names {
		if first[i] != names[i] {
			t.Fatalf("insertion order lost: %v", first)
		}
		if second[i] != first[i] {
			t.Fatalf("sequence not restartable: %v vs %v", first, second)
		}
	}
	// early break must not poison later iterations
	for range r.List() {
		break
	}
	if got := collect(); len(got) != len(names) {
		t.Fatalf("sequence broken after partial iteration: %v", got)
	}
}

func TestRegisterRejectsDuplicateParams(t *testing.T) {
	r := NewRegistry()
	bad := namedAction{def: Definition{
		Name:   "write_file",
		Params: []ParamSpec{{Name: "path", Kind: KindString}, {Name: "path", Kind: KindString}},
	}}
	if err := r.Register(bad); err == nil {
		t.Fatal("expected error for duplicate parameter names")
	}
}
