package ttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleLineTemplate(t *testing.T) {
	t.Parallel()

	tpl, err := Parse("interface {{ name }} is {{ state }}")
	require.NoError(t, err)

	groups := tpl.ParseText("interface eth0 is up\ninterface eth1 is down\n")
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)

	assert.Equal(t, []string{"name", "state"}, groups[0][0].Fields())
	assert.Equal(t, "eth0", groups[0][0].String("name"))
	assert.Equal(t, "up", groups[0][0].String("state"))
	assert.Equal(t, "eth1", groups[0][1].String("name"))
	assert.Equal(t, "down", groups[0][1].String("state"))
}

func TestParse_MultiLineGroupMergesCaptures(t *testing.T) {
	t.Parallel()

	template := "host {{ host }}\nuptime {{ uptime }}"
	source := "host router1\nuptime 41d\nhost router2\nuptime 3d\n"

	tpl, err := Parse(template)
	require.NoError(t, err)

	groups := tpl.ParseText(source)
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 2)
	assert.Equal(t, "router1", groups[0][0].String("host"))
	assert.Equal(t, "41d", groups[0][0].String("uptime"))
	assert.Equal(t, "router2", groups[0][1].String("host"))
}

func TestParse_BlankLineSeparatesGroups(t *testing.T) {
	t.Parallel()

	template := "name {{ name }}\n\nserial {{ serial }}"
	source := "name sw1\nserial ABC123\n"

	tpl, err := Parse(template)
	require.NoError(t, err)

	groups := tpl.ParseText(source)
	require.Len(t, groups, 2)
	require.Len(t, groups[0], 1)
	require.Len(t, groups[1], 1)
	assert.Equal(t, "sw1", groups[0][0].String("name"))
	assert.Equal(t, "ABC123", groups[1][0].String("serial"))
}

func TestParse_IgnorePlaceholderDoesNotCapture(t *testing.T) {
	t.Parallel()

	tpl, err := Parse("{{ ignore }} mtu {{ mtu }}")
	require.NoError(t, err)

	groups := tpl.ParseText("eth0 mtu 1500\n")
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	assert.Equal(t, []string{"mtu"}, groups[0][0].Fields())
	assert.Equal(t, "1500", groups[0][0].String("mtu"))
}

func TestParseText_NoMatchIsEmptyNotError(t *testing.T) {
	t.Parallel()

	tpl, err := Parse("vlan {{ vlan }} name {{ name }}")
	require.NoError(t, err)

	groups := tpl.ParseText("nothing here resembles the template\n")
	require.Len(t, groups, 1)
	assert.Empty(t, groups[0])
}

func TestParse_TemplateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		wantSub  string
	}{
		{name: "unclosed placeholder", template: "value {{ name", wantSub: "unclosed placeholder"},
		{name: "stray close", template: "value name }}", wantSub: "without matching"},
		{name: "empty placeholder", template: "value {{ }}", wantSub: "empty placeholder"},
		{name: "bad identifier", template: "value {{ 9lives }}", wantSub: "invalid variable name"},
		{name: "duplicate in one line", template: "{{ a }} {{ a }}", wantSub: "duplicate variable"},
		{name: "blank template", template: "\n\n", wantSub: "no match lines"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tc.template)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantSub)
		})
	}
}

func TestParse_ErrorsNameTheLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("ok {{ fine }}\nbroken {{ oops\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseText_WhitespaceMustMatch(t *testing.T) {
	t.Parallel()

	tpl, err := Parse("  indented {{ v }}")
	require.NoError(t, err)

	groups := tpl.ParseText("indented nope\n  indented yes\n")
	require.Len(t, groups, 1)
	require.Len(t, groups[0], 1)
	assert.Equal(t, "yes", groups[0][0].String("v"))
}
