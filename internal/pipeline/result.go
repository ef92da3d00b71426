package pipeline

// Status is the outcome of one fixture.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	StatusFixed     Status = "fixed"
	StatusSkipped   Status = "skipped"
	StatusError     Status = "error"
	StatusValid     Status = "valid"
	StatusInvalid   Status = "invalid"
)

// Command names a batch operation.
type Command string

const (
	CommandConvert  Command = "convert"
	CommandFix      Command = "fix"
	CommandValidate Command = "validate"
)

// Statuses returns the statuses a command can report, in summary order.
func (c Command) Statuses() []Status {
	if c == CommandValidate {
		return []Status{StatusValid, StatusInvalid}
	}
	return []Status{StatusUnchanged, StatusFixed, StatusSkipped, StatusError}
}

// Result is the outcome of one fixture.
type Result struct {
	Name    string
	Status  Status
	Details []string
	Err     error // Set for StatusError.
}

// Report collects the results of one batch run in fixture name order.
type Report struct {
	Command Command
	// Check is set when Fix ran without writing.
	Check   bool
	Results []Result
}

// Count returns the number of results with the given status.
func (r *Report) Count(s Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == s {
			n++
		}
	}
	return n
}

// Failed reports whether the run should end with a non-zero exit status: an
// invalid fixture for validate, an errored one otherwise, or under Check a
// fixture that would change.
func (r *Report) Failed() bool {
	if r.Command == CommandValidate {
		return r.Count(StatusInvalid) > 0
	}
	if r.Check && r.Count(StatusFixed) > 0 {
		return true
	}
	return r.Count(StatusError) > 0
}
