package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertStatus checks that the printed report holds the status line for the
// named fixture.
func AssertStatus(t *testing.T, output, status, name string) {
	t.Helper()

	want := StatusLine(status, name)
	for _, line := range strings.Split(output, "\n") {
		if line == want {
			return
		}
	}
	require.Failf(t, "status line not found", "expected line %q in report:\n%s", want, output)
}
