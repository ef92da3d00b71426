package schema

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// RootIndex is the Index of errors that concern the document as a whole.
const RootIndex = -1

// ValidationError is one schema violation. Violations are diagnostic only;
// Validate collects all of them.
type ValidationError struct {
	Index int    // Element position, or RootIndex.
	Field string // Offending field; "$" for the root.
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Index == RootIndex {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("[%d].%s: %s", e.Index, e.Field, e.Msg)
}

// requiredFields are checked on every element, in this order.
var requiredFields = []string{"id", "type"}

// Validate returns every violation found in doc. An empty result means doc is
// valid. An object carrying an "error" member is an expected-failure document
// and is always valid. Input references are not checked.
func Validate(doc []byte) []ValidationError {
	if !gjson.ValidBytes(doc) {
		return []ValidationError{{Index: RootIndex, Field: "$", Msg: "invalid JSON"}}
	}

	root := gjson.ParseBytes(doc)
	if root.IsObject() && root.Get("error").Exists() {
		return nil
	}
	if !root.IsArray() {
		return []ValidationError{{
			Index: RootIndex,
			Field: "$",
			Msg:   fmt.Sprintf("invalid root type %s: expected an array of nodes or an error object", kindOf(root)),
		}}
	}

	var errs []ValidationError
	index := 0
	root.ForEach(func(_, elem gjson.Result) bool {
		defer func() { index++ }()

		if !elem.IsObject() {
			errs = append(errs, ValidationError{
				Index: index,
				Field: "$",
				Msg:   fmt.Sprintf("node must be an object, got %s", kindOf(elem)),
			})
			return true
		}
		for _, field := range requiredFields {
			if !elem.Get(field).Exists() {
				errs = append(errs, ValidationError{Index: index, Field: field, Msg: "missing required field"})
			}
		}
		return true
	})
	return errs
}

func kindOf(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "array"
	case r.IsObject():
		return "object"
	}
	switch r.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.True, gjson.False:
		return "boolean"
	default:
		return "null"
	}
}
