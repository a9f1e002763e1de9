package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamcoop/sift"
	"github.com/liamcoop/sift/source"
)

func TestParseWhere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		pairs []string
		want  sift.Fields
	}{
		{
			name:  "no pairs",
			pairs: nil,
			want:  sift.Fields{},
		},
		{
			name:  "integer value",
			pairs: []string{"age=23"},
			want:  sift.Fields{"age": 23},
		},
		{
			name:  "float value",
			pairs: []string{"age=23.5"},
			want:  sift.Fields{"age": 23.5},
		},
		{
			name:  "text value",
			pairs: []string{"name=Bruce Willis"},
			want:  sift.Fields{"name": "Bruce Willis"},
		},
		{
			name:  "empty value stays text",
			pairs: []string{"name="},
			want:  sift.Fields{"name": ""},
		},
		{
			name:  "multiple pairs",
			pairs: []string{"occupation=Ball", "age=23"},
			want:  sift.Fields{"occupation": "Ball", "age": 23},
		},
		{
			name:  "key is trimmed",
			pairs: []string{" age =23"},
			want:  sift.Fields{"age": 23},
		},
		{
			name:  "last duplicate wins",
			pairs: []string{"age=23", "age=64"},
			want:  sift.Fields{"age": 64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseWhere(tt.pairs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWhereRejectsMalformedPairs(t *testing.T) {
	t.Parallel()

	for _, pair := range []string{"age", "=23", "  =23"} {
		_, err := parseWhere([]string{pair})
		assert.Error(t, err, "pair %q", pair)
	}
}

func TestBuildSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts filterOptions
		want any
	}{
		{
			name: "defaults to samples",
			opts: filterOptions{},
			want: &source.Samples{},
		},
		{
			name: "input selects file",
			opts: filterOptions{input: "records.json"},
			want: &source.File{},
		},
		{
			name: "generate selects generator",
			opts: filterOptions{generate: 10},
			want: &source.Generator{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildSource(&tt.opts)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestBuildSourceRejectsConflictingFlags(t *testing.T) {
	t.Parallel()

	_, err := buildSource(&filterOptions{input: "records.json", generate: 5})
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestBuildSourceRejectsNegativeGenerate(t *testing.T) {
	t.Parallel()

	_, err := buildSource(&filterOptions{generate: -5})
	assert.ErrorContains(t, err, "non-negative")
}

func runFilterCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newFilterCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestFilterCommandSamplesJSON(t *testing.T) {
	t.Parallel()

	out, err := runFilterCmd(t, "--kind", "user", "--where", "age=23", "--output", "json")
	require.NoError(t, err)

	got, err := sift.UnmarshalRecords([]byte(out))
	require.NoError(t, err)

	want := []sift.Record{
		sift.User{Name: "Kate Müller", Age: 23, Occupation: "Astronaut"},
		sift.User{Name: "Wilson", Age: 23, Occupation: "Ball"},
	}
	assert.Equal(t, want, got)
}

func TestFilterCommandConjunction(t *testing.T) {
	t.Parallel()

	out, err := runFilterCmd(t, "--kind", "admin",
		"--where", "age=64", "--where", "name=Bruce Willis",
		"--output", "json")
	require.NoError(t, err)

	got, err := sift.UnmarshalRecords([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []sift.Record{
		sift.Admin{Name: "Bruce Willis", Age: 64, Role: "Manager"},
	}, got)
}

func TestFilterCommandTableOutput(t *testing.T) {
	t.Parallel()

	out, err := runFilterCmd(t, "--kind", "admin", "--where", "age=64")
	require.NoError(t, err)

	for _, want := range []string{"KIND", "NAME", "AGE", "DETAIL", "admin", "Bruce Willis", "64", "Manager"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Kate Müller")
}

func TestFilterCommandNoMatches(t *testing.T) {
	t.Parallel()

	out, err := runFilterCmd(t, "--kind", "user", "--where", "age=99", "--output", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestFilterCommandInvalidKind(t *testing.T) {
	t.Parallel()

	_, err := runFilterCmd(t, "--kind", "moderator")
	assert.ErrorIs(t, err, sift.ErrInvalidKind)
}

func TestFilterCommandInvalidField(t *testing.T) {
	t.Parallel()

	_, err := runFilterCmd(t, "--kind", "user", "--where", "role=Manager")
	assert.ErrorIs(t, err, sift.ErrInvalidField)
}

func TestFilterCommandRequiresKind(t *testing.T) {
	t.Parallel()

	_, err := runFilterCmd(t, "--where", "age=23")
	require.Error(t, err)
	assert.ErrorContains(t, err, "kind")
}

func TestFilterCommandUnknownOutputFormat(t *testing.T) {
	t.Parallel()

	_, err := runFilterCmd(t, "--kind", "user", "--output", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestFilterCommandFromFile(t *testing.T) {
	t.Parallel()

	content := `- kind: user
  name: Trinity
  age: 27
  occupation: Operator
- kind: admin
  name: Morpheus
  age: 41
  role: Captain
`
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := runFilterCmd(t, "--kind", "user", "--input", path, "--output", "json")
	require.NoError(t, err)

	got, err := sift.UnmarshalRecords([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, []sift.Record{
		sift.User{Name: "Trinity", Age: 27, Occupation: "Operator"},
	}, got)
}

func TestFilterCommandFileErrorsSurface(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"kind": "user", "age": -3}]`), 0o600))

	_, err := runFilterCmd(t, "--kind", "user", "--input", path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "records.json")
}

func TestFilterCommandGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := runFilterCmd(t, "--kind", "user", "--generate", "30", "--seed", "7", "--output", "json")
	require.NoError(t, err)
	second, err := runFilterCmd(t, "--kind", "user", "--generate", "30", "--seed", "7", "--output", "json")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	got, err := sift.UnmarshalRecords([]byte(first))
	require.NoError(t, err)
	for i, r := range got {
		assert.Equal(t, sift.KindUser, r.Kind(), "record %d", i)
	}
}
