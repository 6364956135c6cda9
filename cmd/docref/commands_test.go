package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/docref"
)

const stdinRefs = `
refs/heads/main
refs/tags/v0.20.1

refs/tags/v0.20.0
  refs/tags/v0.17.5
`

func TestReadRefs(t *testing.T) {
	t.Parallel()

	got, err := readRefs(strings.NewReader(stdinRefs))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"refs/heads/main",
		"refs/tags/v0.20.1",
		"refs/tags/v0.20.0",
		"refs/tags/v0.17.5",
	}, got)
}

func TestVersionsCommand_JSON(t *testing.T) {
	t.Parallel()

	cmd := VersionsCommand{Depth: "all", SortMode: "desc", Format: "json"}
	var out bytes.Buffer
	require.NoError(t, cmd.run(strings.NewReader(stdinRefs), &out))

	var got []docref.VersionHead
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []docref.VersionHead{
		{Head: "v0.20", Version: "v0.20.1", IsLatest: true},
		{Head: "v0.20", Version: "v0.20.0"},
		{Head: "v0.17", Version: "v0.17.5"},
	}, got)
	assert.Contains(t, out.String(), `"isLatest": true`)
}

func TestVersionsCommand_YAMLHeads(t *testing.T) {
	t.Parallel()

	cmd := VersionsCommand{Depth: "head", SortMode: "desc", Format: "yaml"}
	var out bytes.Buffer
	require.NoError(t, cmd.run(strings.NewReader(stdinRefs), &out))

	var got []docref.VersionHead
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []docref.VersionHead{
		{Head: "v0.20", Version: "v0.20.1", IsLatest: true},
		{Head: "v0.17", Version: "v0.17.5"},
	}, got)
}

func TestVersionsCommand_Text(t *testing.T) {
	t.Parallel()

	cmd := VersionsCommand{Depth: "all", SortMode: "asc", Format: "text", Exclude: `^v0\.17`}
	var out bytes.Buffer
	require.NoError(t, cmd.run(strings.NewReader(stdinRefs), &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"v0.20", "v0.20.0"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"v0.20", "v0.20.1", "latest"}, strings.Fields(lines[1]))
}

func TestVersionsCommand_Errors(t *testing.T) {
	t.Parallel()

	cmd := VersionsCommand{Include: "("}
	err := cmd.run(strings.NewReader(stdinRefs), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include regexp")

	cmd = VersionsCommand{}
	err = cmd.run(strings.NewReader("refs/heads/main\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, docref.ErrNoValidVersions)
}

func TestResolveCommand(t *testing.T) {
	t.Parallel()

	refs := "refs/heads/main\nrefs/tags/v6.1.0\nrefs/tags/v5.9.0\nrefs/tags/v5.0.0\n"

	cases := []struct {
		query string
		want  string
	}{
		{"v6", "refs/heads/next"},
		{"v5", "refs/tags/v5.9.0"},
		{" main ", "refs/heads/main"},
	}

	for _, tc := range cases {
		cmd := ResolveCommand{LatestBranch: "refs/heads/next"}
		cmd.Args.Query = tc.query

		var out bytes.Buffer
		require.NoError(t, cmd.run(strings.NewReader(refs), &out), tc.query)
		assert.Equal(t, tc.want+"\n", out.String(), tc.query)
	}

	cmd := ResolveCommand{LatestBranch: "refs/heads/main"}
	cmd.Args.Query = "v7"
	err := cmd.run(strings.NewReader(refs), &bytes.Buffer{})
	require.ErrorIs(t, err, errNotFound)

	err = cmd.run(strings.NewReader(""), &bytes.Buffer{})
	require.ErrorIs(t, err, docref.ErrNoRefsAvailable)
}

func TestHeadCommand(t *testing.T) {
	t.Parallel()

	cmd := HeadCommand{}
	cmd.Args.Refs = []string{"refs/tags/v0.4.2", "refs/heads/main"}

	var out bytes.Buffer
	require.NoError(t, cmd.run(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"refs/tags/v0.4.2", "v0.4"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"refs/heads/main", "main"}, strings.Fields(lines[1]))

	cmd.Args.Refs = []string{"v1.0.0"}
	require.ErrorIs(t, cmd.run(&bytes.Buffer{}), docref.ErrInvalidRefFormat)
}

func TestRun_ExitCodes(t *testing.T) {
	assert.Equal(t, exitOK, run([]string{"head", "refs/tags/v1.2.3"}))
	assert.Equal(t, exitFailure, run([]string{"head", "v1.2.3"}))
	assert.Equal(t, exitUsage, run([]string{"bogus"}))
	assert.Equal(t, exitOK, run([]string{"--help"}))
}
