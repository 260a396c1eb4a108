package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/tpt/pkg/backend"
	"github.com/dkoosis/tpt/pkg/normalize"
)

// countingBackend records how often its extraction function runs.
func countingBackend(calls *int, fail error) backend.Backend {
	return backend.Backend{
		ID:    "counting",
		Label: "Counting",
		Extract: func(source, template string) (any, error) {
			*calls++
			if fail != nil {
				return nil, fail
			}
			return []any{}, nil
		},
		FormatError: func(err error, template string) string {
			return "Counting Error\n  Detail: " + err.Error()
		},
		Normalize:     normalize.Flatten,
		SnippetFormat: "// snippet __TEMPLATE__ __SOURCE__\n",
	}
}

func TestRun_EmptyInputShortCircuits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		source     string
		template   string
		wantStatus string
	}{
		{name: "blank source", source: "   \n\t", template: "tpl", wantStatus: "source text is empty"},
		{name: "empty source", source: "", template: "tpl", wantStatus: "source text is empty"},
		{name: "blank template", source: "text", template: " \n ", wantStatus: "template is empty"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			calls := 0
			out := Run(tc.source, tc.template, countingBackend(&calls, nil))

			assert.Equal(t, KindEmptyInput, out.Kind)
			assert.Equal(t, tc.wantStatus, out.Status)
			assert.Zero(t, calls, "backend must not be invoked")
			assert.Empty(t, out.Report)
			assert.Empty(t, out.Records)
		})
	}
}

func TestRun_FailureProducesReportAndPlaceholder(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Run("src", "tpl", countingBackend(&calls, errors.New("engine said no")))

	assert.Equal(t, KindFailure, out.Kind)
	assert.Equal(t, 1, calls)
	assert.Contains(t, out.Report, "engine said no")
	assert.True(t, strings.HasPrefix(out.Snippet, "// Parse failed"), "placeholder snippet expected")
	assert.Contains(t, out.Snippet, "engine said no")
	assert.Empty(t, out.Records)
}

func TestRun_SuccessWithZeroRecords(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Run("src", "tpl", countingBackend(&calls, nil))

	assert.Equal(t, KindSuccess, out.Kind)
	assert.Empty(t, out.Records)
	assert.Empty(t, out.Report)
	assert.Equal(t, "// snippet `tpl` `src`\n", out.Snippet)
	assert.Equal(t, "parsed 0 records with Counting", out.Status)
}

func TestRunID_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := RunID("src", "tpl", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrUnknownBackend)
}

func TestRunID_BlankBackendIsGuidance(t *testing.T) {
	t.Parallel()

	out, err := RunID("src", "tpl", "")
	require.NoError(t, err)
	assert.Equal(t, KindEmptyInput, out.Kind)
	assert.Equal(t, "no backend selected", out.Status)
}

func TestRunID_TextFSMSingleRecord(t *testing.T) {
	t.Parallel()

	template := "Value GREETING (\\S+)\n\nStart\n  ^Hello ${GREETING} -> Record\n"
	source := "Hello world\n"

	out, err := RunID(source, template, "textfsm")
	require.NoError(t, err)

	require.Equal(t, KindSuccess, out.Kind)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "world", out.Records[0].String("GREETING"))
	assert.Contains(t, out.Snippet, "gotextfsm")
	assert.Equal(t, "parsed 1 record with TextFSM", out.Status)
}

func TestRunID_TextFSMMissingStartState(t *testing.T) {
	t.Parallel()

	// A template with values but no Start state is rejected by the
	// engine; the orchestrator must convert that into a report.
	template := "Value NAME (\\S+)\n\nNotStart\n  ^${NAME} -> Record\n"

	out, err := RunID("some text\n", template, "textfsm")
	require.NoError(t, err)

	require.Equal(t, KindFailure, out.Kind)
	assert.Contains(t, out.Report, "TextFSM Error")
	assert.True(t, strings.HasPrefix(out.Snippet, "// Parse failed"))
	assert.Empty(t, out.Records)
}

func TestRunID_TTPNoMatchIsSuccess(t *testing.T) {
	t.Parallel()

	out, err := RunID("nothing matches here\n", "vlan {{ vlan }} name {{ name }}\n", "ttp")
	require.NoError(t, err)

	assert.Equal(t, KindSuccess, out.Kind)
	assert.Empty(t, out.Records)
	assert.Empty(t, out.Report)
	assert.Contains(t, out.Snippet, "ttp.Parse")
}

func TestRunID_TTPFieldOrderFollowsTemplate(t *testing.T) {
	t.Parallel()

	out, err := RunID("pair beta alpha\n", "pair {{ second }} {{ first }}\n", "ttp")
	require.NoError(t, err)

	require.Equal(t, KindSuccess, out.Kind)
	require.Len(t, out.Records, 1)
	assert.Equal(t, []string{"second", "first"}, out.Records[0].Fields())
	assert.Equal(t, "beta", out.Records[0].String("second"))
}

func TestRun_UniformFieldSetAcrossRecords(t *testing.T) {
	t.Parallel()

	out, err := RunID("if eth0 up\nif eth1 down\n", "if {{ name }} {{ state }}\n", "ttp")
	require.NoError(t, err)

	require.Equal(t, KindSuccess, out.Kind)
	require.Len(t, out.Records, 2)
	assert.Equal(t, out.Records[0].Fields(), out.Records[1].Fields())
}
