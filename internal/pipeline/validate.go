package pipeline

import (
	"context"

	"github.com/specialistvlad/graphfix/internal/fixture"
	"github.com/specialistvlad/graphfix/internal/fsutil"
	"github.com/specialistvlad/graphfix/internal/schema"
)

// validateCase checks that a fixture has its script and a well-formed
// canonical document.
func (p *Pipeline) validateCase(_ context.Context, c fixture.Case) Result {
	ok, err := fsutil.Exists(c.InputPath())
	if err != nil {
		return invalid(err.Error())
	}
	if !ok {
		return invalid("missing " + c.Layout.InputName)
	}

	data, found, err := readOptional(c.ExpectedPath())
	if err != nil {
		return invalid(err.Error())
	}
	if !found {
		return invalid("missing " + c.Layout.ExpectedPath)
	}

	errs := schema.Validate(data)
	if len(errs) == 0 {
		return Result{Status: StatusValid}
	}
	details := make([]string, len(errs))
	for i, e := range errs {
		details[i] = c.Layout.ExpectedPath + ": " + e.Error()
	}
	return Result{Status: StatusInvalid, Details: details}
}

func invalid(detail string) Result {
	return Result{Status: StatusInvalid, Details: []string{detail}}
}
