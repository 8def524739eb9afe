package lsp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	lsp "github.com/sourcegraph/go-lsp"
	"src.polyc.dev/pkg/parse"
	"src.polyc.dev/pkg/testutil"
)

var diagnosticsTests = []struct {
	name    string
	content string
	want    []lsp.Diagnostic
}{
	{
		name:    "empty document",
		content: "",
		want:    []lsp.Diagnostic{},
	},
	{
		name: "well-formed document",
		content: testutil.Dedent(`
			# fixture
			(1,2)+(3,0)
			ZERO
			DEG_BY 5
			AT -7
			`),
		want: []lsp.Diagnostic{},
	},
	{
		name:    "malformed polynomial",
		content: "(1,2\n",
		want: []lsp.Diagnostic{
			{
				Range: lsp.Range{
					Start: lsp.Position{Line: 0, Character: 0},
					End:   lsp.Position{Line: 0, Character: 4},
				},
				Severity: lsp.Error,
				Source:   "polyc",
				Message:  parse.WrongPoly,
			},
		},
	},
	{
		name:    "malformed command after good lines",
		content: "1\n2\nADX\n",
		want: []lsp.Diagnostic{
			{
				Range: lsp.Range{
					Start: lsp.Position{Line: 2, Character: 0},
					End:   lsp.Position{Line: 2, Character: 3},
				},
				Severity: lsp.Error,
				Source:   "polyc",
				Message:  parse.WrongCommand,
			},
		},
	},
	{
		name:    "bad command argument",
		content: "DEG_BY x\n",
		want: []lsp.Diagnostic{
			{
				Range: lsp.Range{
					Start: lsp.Position{Line: 0, Character: 6},
					End:   lsp.Position{Line: 0, Character: 8},
				},
				Severity: lsp.Error,
				Source:   "polyc",
				Message:  parse.DegByWrongVariable,
			},
		},
	},
	{
		name:    "CRLF line endings",
		content: "(1,2\r\nZERO\r\n",
		want: []lsp.Diagnostic{
			{
				Range: lsp.Range{
					Start: lsp.Position{Line: 0, Character: 0},
					End:   lsp.Position{Line: 0, Character: 4},
				},
				Severity: lsp.Error,
				Source:   "polyc",
				Message:  parse.WrongPoly,
			},
		},
	},
}

func TestDiagnostics(t *testing.T) {
	for _, test := range diagnosticsTests {
		t.Run(test.name, func(t *testing.T) {
			got := diagnostics(test.content)
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("diagnostics (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompletion(t *testing.T) {
	s := newServer()
	got, err := s.completion(nil, nil, []byte(`{}`))
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	items := got.([]lsp.CompletionItem)
	labels := make(map[string]bool)
	for _, item := range items {
		if item.Kind != lsp.CIKKeyword {
			t.Errorf("item %q has kind %v, want CIKKeyword", item.Label, item.Kind)
		}
		labels[item.Label] = true
	}
	for _, want := range []string{"ZERO", "ADD", "DEG_BY", "COMPOSE"} {
		if !labels[want] {
			t.Errorf("completion misses %q", want)
		}
	}
}
