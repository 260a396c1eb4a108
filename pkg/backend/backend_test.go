package backend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownBackends(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"textfsm", "ttp"} {
		b, err := Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, string(b.ID))
	}
}

func TestLookup_UnknownBackend(t *testing.T) {
	t.Parallel()

	_, err := Lookup("regex")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Contains(t, err.Error(), "regex")
}

func TestAll_BackendsAreComplete(t *testing.T) {
	t.Parallel()

	backends := All()
	require.Len(t, backends, 2)
	for _, b := range backends {
		assert.NotEmpty(t, b.ID)
		assert.NotEmpty(t, b.Label)
		assert.NotNil(t, b.Extract, b.ID)
		assert.NotNil(t, b.FormatError, b.ID)
		assert.NotNil(t, b.Normalize, b.ID)
		assert.NotEmpty(t, b.SnippetFormat, b.ID)
		assert.NotEmpty(t, b.TemplateExts, b.ID)
	}
}

func TestIDs_StableOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"textfsm", "ttp"}, IDs())
}

func TestIsTemplateExt(t *testing.T) {
	t.Parallel()

	assert.True(t, IsTemplateExt(".textfsm"))
	assert.True(t, IsTemplateExt(".ttp"))
	assert.False(t, IsTemplateExt(".txt"))
	assert.False(t, IsTemplateExt(""))
}

func TestValueNames_DeclarationOrder(t *testing.T) {
	t.Parallel()

	template := strings.Join([]string{
		`Value ZNAME (\S+)`,
		`Value Required ANAME (\d+)`,
		`Value List PORTS (\S+ \S+)`,
		``,
		`Start`,
		`  ^${ZNAME} -> Record`,
	}, "\n")

	assert.Equal(t, []string{"ZNAME", "ANAME", "PORTS"}, valueNames(template))
}

func TestValueNames_IgnoresNonValueLines(t *testing.T) {
	t.Parallel()

	assert.Empty(t, valueNames("Start\n  ^line -> Record\n"))
}

func TestTextFSMSnippet_PrintsFieldsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	// The engine's row maps are unordered and encoding/json sorts map
	// keys, so the reproducer must derive header order from the
	// template's Value declarations rather than serialize rows as maps.
	assert.Contains(t, textFSMSnippet, "headers := valueNames(TEMPLATE)")
	assert.Contains(t, textFSMSnippet, "for j, h := range headers")
	assert.NotContains(t, textFSMSnippet, "MarshalIndent(out.Dict")
}

func TestExtractTTP_GroupedRawShape(t *testing.T) {
	t.Parallel()

	raw, err := extractTTP("a 1\n", "a {{ v }}")
	require.NoError(t, err)

	b, err := Lookup("ttp")
	require.NoError(t, err)
	records := b.Normalize(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].String("v"))
}

func TestExtractTTP_TemplateErrorSurfaces(t *testing.T) {
	t.Parallel()

	_, err := extractTTP("text", "bad {{ open")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclosed placeholder")
}
