package helm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantEmpty  bool
		wantLeaves int
		want       []Finding
	}{
		{
			name:      "comment only",
			input:     "# No values generated.\n",
			wantEmpty: true,
		},
		{
			name: "complete web modeler database",
			input: `webModeler:
  restapi:
    externalDatabase:
      url: jdbc:postgresql://db:5432/web-modeler
      port: 5432
webModelerPostgresql:
  enabled: false
`,
			wantLeaves: 3,
		},
		{
			name: "empty leaves are reported in key order",
			input: `webModeler:
  restapi:
    externalDatabase:
      user:
      host: ""
      port: 5432
`,
			wantLeaves: 3,
			want: []Finding{
				{Path: "webModeler.restapi.externalDatabase.host", Message: "empty string"},
				{Path: "webModeler.restapi.externalDatabase.user", Message: "no value"},
			},
		},
		{
			name: "list entries",
			input: `zeebe:
  env:
    - name: A
      value:
`,
			wantLeaves: 2,
			want: []Finding{
				{Path: "zeebe.env[0].value", Message: "no value"},
			},
		},
		{
			name:  "empty containers",
			input: "a: {}\nb: []\n",
			want: []Finding{
				{Path: "a", Message: "empty map"},
				{Path: "b", Message: "empty list"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Lint([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmpty, report.Empty)
			assert.Equal(t, tt.wantLeaves, report.Leaves)
			assert.Equal(t, tt.want, report.Findings)
		})
	}
}

func TestLint_Invalid(t *testing.T) {
	_, err := Lint([]byte("a: [b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse values")
}

func TestFinding_String(t *testing.T) {
	assert.Equal(t, "a.b: no value", Finding{Path: "a.b", Message: "no value"}.String())
}
