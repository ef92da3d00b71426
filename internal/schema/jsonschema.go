package schema

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/specialistvlad/graphfix/internal/joinid"
	"github.com/specialistvlad/graphfix/internal/model"
)

// JoinIDPattern matches the text form of a join id.
const JoinIDPattern = `^[^#]+#[^#]+$`

var (
	optionsType = reflect.TypeOf(model.Options{})
	inputsType  = reflect.TypeOf(model.Inputs{})
	joinIDType  = reflect.TypeOf(joinid.JoinID{})
	rawType     = reflect.TypeOf(json.RawMessage{})
)

// JSONSchema returns the JSON Schema of a canonical graph document, indented.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Mapper:         mapType,
	}
	s := r.Reflect(model.Graph{})
	s.Title = "Canonical graph"
	s.Description = "Topologically ordered nodes with resolved input references."
	return json.MarshalIndent(s, "", "  ")
}

// mapType describes the types whose JSON form differs from their Go layout.
func mapType(t reflect.Type) *jsonschema.Schema {
	switch t {
	case optionsType:
		return &jsonschema.Schema{
			Type:        "object",
			Description: "Free-form node configuration.",
		}
	case inputsType:
		return &jsonschema.Schema{
			Type:        "object",
			Description: "Input socket to the ordered references feeding it.",
			AdditionalProperties: &jsonschema.Schema{
				Type:  "array",
				Items: joinIDSchema(),
			},
		}
	case joinIDType:
		return joinIDSchema()
	case rawType:
		return &jsonschema.Schema{}
	}
	return nil
}

func joinIDSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     JoinIDPattern,
		Description: "Output socket of another node, as node#socket.",
	}
}
