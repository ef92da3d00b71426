package pipeline

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/graphfix/internal/dag"
	"github.com/specialistvlad/graphfix/internal/fixture"
	"github.com/specialistvlad/graphfix/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	unorderedGraph  = `[{"id":"b","type":"t","options":{},"inputs":{"in":["a#out"]}},{"id":"a","type":"t","options":{},"inputs":{}}]`
	orderedGraph    = `[{"id":"a","type":"t"},{"id":"b","type":"t","inputs":{"in":["a#out"]}}]`
	cycleGraph      = `[{"id":"A","type":"t","inputs":{"in":["B#out"]}},{"id":"B","type":"t","inputs":{"in":["A#out"]}}]`
	danglingGraph   = `[{"id":"a","type":"t","inputs":{"in":["ghost#out"]}}]`
	selfCycleGraph  = `[{"id":"a","type":"t","inputs":{"in":["a#out"]}}]`
	incompleteGraph = `[{"type":"t","inputs":{"in":["b#out"]}},{"id":"b"}]`

	sortedGraph = `[
  {
    "id": "a",
    "type": "t",
    "options": {},
    "inputs": {}
  },
  {
    "id": "b",
    "type": "t",
    "options": {},
    "inputs": {
      "in": [
        "a#out"
      ]
    }
  }
]
`
)

func resultsByName(r *Report) map[string]Result {
	m := make(map[string]Result, len(r.Results))
	for _, res := range r.Results {
		m[res.Name] = res
	}
	return m
}

func TestFix(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"ordered/expected.json":    orderedGraph,
		"unordered/expected.json":  unorderedGraph,
		"cycle/expected.json":      cycleGraph,
		"error_case/expected.json": `{"error": "bad token"}`,
		"empty/expected.json":      "\n",
		"broken/expected.json":     `[{"id":`,
		"dupes/expected.json":      `[{"id":"a","type":"t"},{"id":"a","type":"t"}]`,
		"no_expected/notes.md":     "",
		"self_cycle/expected.json": selfCycleGraph,
		"incomplete/expected.json": incompleteGraph,
	})

	p := New(Options{FixtureRoot: root, Workers: 4})
	report, err := p.Fix(context.Background(), false)
	require.NoError(t, err)

	var names []string
	for _, res := range report.Results {
		names = append(names, res.Name)
	}
	assert.Equal(t, []string{"broken", "cycle", "dupes", "empty", "error_case", "incomplete", "no_expected", "ordered", "self_cycle", "unordered"}, names)

	results := resultsByName(report)
	assert.Equal(t, StatusUnchanged, results["ordered"].Status)
	assert.Equal(t, StatusFixed, results["unordered"].Status)
	assert.Equal(t, []string{"reordered 2 nodes"}, results["unordered"].Details)
	assert.Equal(t, StatusSkipped, results["error_case"].Status)
	assert.Equal(t, StatusSkipped, results["empty"].Status)
	assert.Equal(t, StatusSkipped, results["no_expected"].Status)
	assert.Equal(t, StatusError, results["broken"].Status)
	assert.ErrorIs(t, results["broken"].Err, fixture.ErrJSONParse)
	assert.Equal(t, StatusError, results["cycle"].Status)
	assert.ErrorIs(t, results["cycle"].Err, dag.ErrCircularDependency)
	assert.Equal(t, StatusError, results["dupes"].Status)
	assert.Equal(t, StatusError, results["self_cycle"].Status)
	assert.ErrorIs(t, results["self_cycle"].Err, dag.ErrCircularDependency)
	assert.Equal(t, StatusError, results["incomplete"].Status)
	assert.Equal(t, []string{"[0].id: missing required field", "[1].type: missing required field"}, results["incomplete"].Details)
	assert.True(t, report.Failed())

	assert.Equal(t, sortedGraph, testutil.ReadFile(t, root, "unordered/expected.json"))
	assert.Equal(t, orderedGraph, testutil.ReadFile(t, root, "ordered/expected.json"), "sorted fixtures are not rewritten")
	assert.Equal(t, cycleGraph, testutil.ReadFile(t, root, "cycle/expected.json"), "failed fixtures are left untouched")
	assert.Equal(t, selfCycleGraph, testutil.ReadFile(t, root, "self_cycle/expected.json"))
	assert.Equal(t, incompleteGraph, testutil.ReadFile(t, root, "incomplete/expected.json"))

	again, err := p.Fix(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, resultsByName(again)["unordered"].Status)
	assert.Equal(t, sortedGraph, testutil.ReadFile(t, root, "unordered/expected.json"))
}

func TestFix_Check(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"ordered/expected.json":   orderedGraph,
		"unordered/expected.json": unorderedGraph,
	})

	report, err := New(Options{FixtureRoot: root}).Fix(context.Background(), true)
	require.NoError(t, err)

	results := resultsByName(report)
	assert.Equal(t, StatusFixed, results["unordered"].Status)
	assert.Equal(t, []string{"would reorder 2 nodes"}, results["unordered"].Details)
	assert.True(t, report.Failed())
	assert.Equal(t, unorderedGraph, testutil.ReadFile(t, root, "unordered/expected.json"))

	clean := testutil.WriteTree(t, map[string]string{"ordered/expected.json": orderedGraph})
	report, err = New(Options{FixtureRoot: clean}).Fix(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, report.Failed())
}

func TestFix_DanglingPolicy(t *testing.T) {
	testCases := []struct {
		policy  dag.DanglingPolicy
		status  Status
		details []string
	}{
		{policy: dag.DanglingIgnore, status: StatusUnchanged, details: []string{"already sorted"}},
		{policy: dag.DanglingWarn, status: StatusUnchanged, details: []string{"dangling reference a.in -> ghost#out", "already sorted"}},
		{policy: dag.DanglingReject, status: StatusError, details: []string{"dangling reference: a.in -> ghost#out"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.policy), func(t *testing.T) {
			root := testutil.WriteTree(t, map[string]string{"dangling/expected.json": danglingGraph})

			report, err := New(Options{FixtureRoot: root, Dangling: tc.policy}).Fix(context.Background(), false)
			require.NoError(t, err)
			require.Len(t, report.Results, 1)
			assert.Equal(t, tc.status, report.Results[0].Status)
			assert.Equal(t, tc.details, report.Results[0].Details)
		})
	}
}

func TestFix_CustomLayout(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{"case/expected/graph.json": unorderedGraph})

	layout := fixture.DefaultLayout()
	layout.ExpectedPath = "expected/graph.json"
	report, err := New(Options{FixtureRoot: root, Layout: layout}).Fix(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, StatusFixed, report.Results[0].Status)
	assert.Equal(t, sortedGraph, testutil.ReadFile(t, root, "case/expected/graph.json"))
}

func TestConvert(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"basic/input.txt": "b = sma(a)\n",
		"basic/expected.txt": `{
  "nodes": [
    {"id": "b", "type": "t", "params": {}},
    {"id": "a", "type": "t"}
  ],
  "edges": [
    {"source": "a", "source_handle": "out", "target": "b", "target_handle": "in"}
  ]
}`,
		"failure/input.txt":       "x = \n",
		"failure/expected.txt":    "ERROR: unexpected end of input\n",
		"cycle/input.txt":         "",
		"cycle/expected.txt":      `{"nodes":[{"id":"A","type":"t"},{"id":"B","type":"t"}],"edges":[{"source":"A","source_handle":"o","target":"B","target_handle":"i"},{"source":"B","source_handle":"o","target":"A","target_handle":"i"}]}`,
		"no_input/expected.txt":   "ERROR: x",
		"bad_edge/input.txt":      "",
		"bad_edge/expected.txt":   `{"nodes":[{"id":"a","type":"t"}],"edges":[{"source":"a","target":"a","target_handle":"i"}]}`,
		"self_cycle/input.txt":    "",
		"self_cycle/expected.txt": `{"nodes":[{"id":"a","type":"t"}],"edges":[{"source":"a","source_handle":"out","target":"a","target_handle":"in"}]}`,
	})
	out := t.TempDir()

	p := New(Options{FixtureRoot: root, OutputRoot: out, Workers: 2})
	report, err := p.Convert(context.Background())
	require.NoError(t, err)

	results := resultsByName(report)
	assert.Equal(t, StatusFixed, results["basic"].Status)
	assert.Contains(t, results["basic"].Details, "reordered nodes topologically")
	assert.Equal(t, StatusFixed, results["failure"].Status)
	assert.Equal(t, StatusSkipped, results["no_input"].Status)
	assert.Equal(t, StatusError, results["cycle"].Status)
	assert.ErrorIs(t, results["cycle"].Err, dag.ErrCircularDependency)
	assert.Equal(t, StatusError, results["bad_edge"].Status)
	assert.Equal(t, StatusError, results["self_cycle"].Status)
	assert.ErrorIs(t, results["self_cycle"].Err, dag.ErrCircularDependency)
	assert.True(t, report.Failed())

	assert.Equal(t, sortedGraph, testutil.ReadFile(t, out, "basic/expected.json"))
	assert.Equal(t, "b = sma(a)\n", testutil.ReadFile(t, out, "basic/input.txt"))
	assert.Equal(t, "{\n  \"error\": \"unexpected end of input\"\n}\n", testutil.ReadFile(t, out, "failure/expected.json"))
	assert.False(t, testutil.Exists(t, out, "cycle"), "failed fixtures write nothing")
	assert.False(t, testutil.Exists(t, out, "self_cycle"))

	again, err := p.Convert(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, resultsByName(again)["basic"].Status)
	assert.Equal(t, StatusUnchanged, resultsByName(again)["failure"].Status)
}

func TestConvertThenFixIsStable(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"basic/input.txt":    "",
		"basic/expected.txt": `{"nodes":[{"id":"b","type":"t"},{"id":"a","type":"t"}],"edges":[{"source":"a","source_handle":"out","target":"b","target_handle":"in"}]}`,
	})

	p := New(Options{FixtureRoot: root})
	_, err := p.Convert(context.Background())
	require.NoError(t, err)
	before := testutil.ReadFile(t, root, "basic/expected.json")

	report, err := p.Fix(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, report.Results[0].Status)
	assert.False(t, report.Failed())
	assert.Equal(t, before, testutil.ReadFile(t, root, "basic/expected.json"))
}

func TestValidate(t *testing.T) {
	root := testutil.WriteTree(t, map[string]string{
		"good/input.txt":           "",
		"good/expected.json":       orderedGraph,
		"error_case/input.txt":     "",
		"error_case/expected.json": `{"error":"bad token"}`,
		"no_input/expected.json":   orderedGraph,
		"no_expected/input.txt":    "",
		"missing_id/input.txt":     "",
		"missing_id/expected.json": `[{"type":"t"}]`,
	})

	report, err := New(Options{FixtureRoot: root}).Validate(context.Background())
	require.NoError(t, err)

	results := resultsByName(report)
	assert.Equal(t, StatusValid, results["good"].Status)
	assert.Equal(t, StatusValid, results["error_case"].Status)
	assert.Equal(t, Result{Name: "no_input", Status: StatusInvalid, Details: []string{"missing input.txt"}}, results["no_input"])
	assert.Equal(t, []string{"missing expected.json"}, results["no_expected"].Details)
	assert.Equal(t, []string{"expected.json: [0].id: missing required field"}, results["missing_id"].Details)
	assert.True(t, report.Failed())
	assert.Equal(t, 2, report.Count(StatusValid))
	assert.Equal(t, 3, report.Count(StatusInvalid))

	clean := testutil.WriteTree(t, map[string]string{"good/input.txt": "", "good/expected.json": orderedGraph})
	report, err = New(Options{FixtureRoot: clean}).Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		_, err := New(Options{FixtureRoot: filepath.Join(t.TempDir(), "nope")}).Validate(context.Background())
		assert.ErrorContains(t, err, "failed to list fixtures")
	})

	t.Run("cancelled", func(t *testing.T) {
		root := testutil.WriteTree(t, map[string]string{"a/expected.json": orderedGraph})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := New(Options{FixtureRoot: root}).Fix(ctx, false)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPrint(t *testing.T) {
	report := &Report{
		Command: CommandFix,
		Results: []Result{
			{Name: "a", Status: StatusUnchanged, Details: []string{"already sorted"}},
			{Name: "b", Status: StatusFixed, Details: []string{"reordered 3 nodes"}},
			{Name: "c", Status: StatusError, Details: []string{"circular dependency: unresolved nodes [x, y]"}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, report))
	lines := strings.Split(buf.String(), "\n")

	assert.Equal(t, "UNCHANGED a", lines[0])
	assert.Equal(t, "          - already sorted", lines[1])
	assert.Equal(t, testutil.StatusLine("fixed", "b"), lines[2])
	assert.Equal(t, testutil.StatusLine("error", "c"), lines[4])
	assert.Contains(t, buf.String(), "Summary: 1 unchanged, 1 fixed, 0 skipped, 1 error (3 total)")

	buf.Reset()
	require.NoError(t, Print(&buf, &Report{Command: CommandValidate, Results: []Result{{Name: "a", Status: StatusValid}}}))
	testutil.AssertStatus(t, buf.String(), "valid", "a")
	assert.Contains(t, buf.String(), "Summary: 1 valid, 0 invalid (1 total)")
}
