package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ktorrent"
	main "github.com/fwojciec/ktorrent/cmd/ktorrent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allCommands = []string{"extract", "search", "magnet", "sites", "results"}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		main.Vars("ktorrent.db"),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesExtractFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}), main.Vars("ktorrent.db"))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"extract", "child-attr-by-class", "page.html",
		"--parent-tag", "td", "--child-class", "btn btn-blue", "--attr", "onclick"})

	require.NoError(t, err)
	assert.Equal(t, "page.html", cli.Extract.File)
	assert.Equal(t, "td", cli.Extract.ParentTag)
	assert.Equal(t, "btn btn-blue", cli.Extract.ChildClass)
	assert.Equal(t, "onclick", cli.Extract.Attr)
}

func TestCLI_RejectsUnknownExtractKind(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}), main.Vars("ktorrent.db"))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"extract", "by-xpath"})

	require.Error(t, err)
}

func TestCLI_AcceptsEveryRuleKind(t *testing.T) {
	t.Parallel()

	for _, kind := range ktorrent.Kinds() {
		cli := &main.CLI{}
		parser, err := kong.New(cli, kong.Exit(func(int) {}), main.Vars("ktorrent.db"))
		require.NoError(t, err)

		_, err = parser.Parse([]string{"extract", string(kind)})

		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, string(kind), cli.Extract.Kind)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, nil, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range allCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "Flags:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
