package action

import (
	"encoding/json"
	"testing"
)

func TestInputSchemaShape(t *testing.T) {
	d := Definition{
		Name: "write_file",
		Params: []ParamSpec{
			{Name: "path", Kind: KindString, Required: true, Description: "target path"},
			{Name: "content", Kind: KindString, Required: true},
			{Name: "overwrite", Kind: KindBoolean, Required: false, Default: false},
		},
	}
	b, err := d.InputSchema()
	if err != nil {
		t.Fatal(err)
	}
	var s struct {
		Type       string                     `json:"type"`
		Properties map[string]json.RawMessage `json:"properties"`
		Required   []string                   `json:"required"`
	}
	if err := json.Unmarshal(b, &s); err != nil {
		t.Fatal(err)
	}
	if s.Type != "object" || len(s.Properties) != 3 {
		t.Fatalf("schema=%s", b)
	}
	if len(s.Required) != 2 {
		t.Fatalf("required=%v", s.Required)
	}
	if err := CompileJSONSchema(b); err != nil {
		t.Fatalf("generated schema does not compile: %v", err)
	}
}

func TestInputSchemaValidates(t *testing.T) {
	d := Definition{
		Name: "read_file",
		Params: []ParamSpec{
			{Name: "path", Kind: KindString, Required: true},
		},
	}
	b, err := d.InputSchema()
	if err != nil {
		t.Fatal(err)
	}
	if err := JSONSchemaValidator(b, map[string]any{"path": "notes.txt"}); err != nil {
		t.Fatalf("valid args rejected: %v", err)
	}
	if err := JSONSchemaValidator(b, map[string]any{"path": 7}); err == nil {
		t.Fatal("wrong kind accepted")
	}
	if err := JSONSchemaValidator(b, map[string]any{}); err == nil {
		t.Fatal("missing required accepted")
	}
}

func TestInputSchemaRejectsBadParams(t *testing.T) {
	if _, err := (Definition{Params: []ParamSpec{{Name: "x", Kind: "tuple"}}}).InputSchema(); err == nil {
		t.Fatal("unknown kind accepted")
	}
	if _, err := (Definition{Params: []ParamSpec{{Name: "", Kind: KindString}}}).InputSchema(); err == nil {
		t.Fatal("empty name accepted")
	}
}

func TestApplyDefaultsDoesNotMutateInput(t *testing.T) {
	params := []ParamSpec{
		{Name: "path", Kind: KindString, Required: true},
		{Name: "recursive", Kind: KindBoolean, Default: false},
	}
	in := map[string]any{"path": "."}
	out := applyDefaults(params, in)
	if _, ok := out["recursive"]; !ok {
		t.Fatalf("default not applied: %v", out)
	}
	if _, ok := in["recursive"]; ok {
		t.Fatal("input map mutated")
	}
	// explicit value wins over default
	out = applyDefaults(params, map[string]any{"path": ".", "recursive": true})
	if out["recursive"] != true {
		t.Fatalf("explicit value overridden: %v", out)
	}
}
