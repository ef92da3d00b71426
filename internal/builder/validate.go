package builder

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/graphfix/internal/model"
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names so errors match what the editor exported.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateDocument checks required fields on every node and edge, then node id
// uniqueness. The first problem found is returned.
func validateDocument(doc model.EditorDocument) error {
	seen := make(map[string]int, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if err := requireFields("node", i, n); err != nil {
			return err
		}
		if first, exists := seen[n.ID]; exists {
			return &model.DuplicateIDError{ID: n.ID, First: first, Second: i}
		}
		seen[n.ID] = i
	}
	for i, e := range doc.Edges {
		if err := requireFields("edge", i, e); err != nil {
			return err
		}
	}
	return nil
}

func requireFields(kind string, index int, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &model.MissingFieldError{Kind: kind, Index: index, Field: fieldErrs[0].Field()}
	}
	return err
}
