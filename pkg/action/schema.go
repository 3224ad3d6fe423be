package action

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// InputSchema renders the definition's parameter list as a JSON Schema
// object. The schema is what the resolver catalog exports and what the
// executor validates candidate arguments against.
func (d Definition) InputSchema() ([]byte, error) {
	s, err := paramSchema(d.Params)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// SchemaObject returns the parameter schema as a structured value, for
// callers that embed it rather than serialize it.
func (d Definition) SchemaObject() (*jsonschema.Schema, error) {
	return paramSchema(d.Params)
}

func paramSchema(params []ParamSpec) (*jsonschema.Schema, error) {
	obj := &jsonschema.Schema{
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	}
	for _, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("parameter with empty name")
		}
		if _, dup := obj.Properties[p.Name]; dup {
			return nil, fmt.Errorf("duplicate parameter %q", p.Name)
		}
		ps := &jsonschema.Schema{Description: p.Description}
		switch p.Kind {
		case KindString, KindInteger, KindNumber, KindBoolean, KindArray, KindObject:
			ps.Type = string(p.Kind)
		case "":
			// no type constraint
		default:
			return nil, fmt.Errorf("parameter %q: unknown kind %q", p.Name, p.Kind)
		}
		obj.Properties[p.Name] = ps
		if p.Required {
			obj.Required = append(obj.Required, p.Name)
		}
	}
	return obj, nil
}

// applyDefaults returns a copy of args with defaults bound for omitted
// optional parameters. The input map is never mutated.
func applyDefaults(params []ParamSpec, args map[string]any) map[string]any {
	out := make(map[string]any, len(args)+len(params))
	for k, v := range args {
		out[k] = v
	}
	for _, p := range params {
		if _, present := out[p.Name]; !present && !p.Required && p.Default != nil {
			out[p.Name] = p.Default
		}
	}
	return out
}

// conformsKind reports whether a decoded JSON value satisfies a parameter
// kind. JSON numbers arrive as float64; a whole float64 satisfies an integer
// parameter. No other coercion happens at this layer.
func conformsKind(k Kind, v any) bool {
	switch k {
	case "":
		return true
	case KindString:
		_, ok := v.(string)
		return ok
	case KindBoolean:
		_, ok := v.(bool)
		return ok
	case KindNumber:
		switch v.(type) {
		case float64, float32, int, int32, int64:
			return true
		}
		return false
	case KindInteger:
		switch n := v.(type) {
		case int, int32, int64:
			return true
		case float64:
			return n == float64(int64(n))
		case float32:
			return n == float32(int32(n))
		}
		return false
	case KindArray:
		_, ok := v.([]any)
		return ok
	case KindObject:
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}
