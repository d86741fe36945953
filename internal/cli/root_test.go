package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// clearEnv isolates a test from DASHVIEW_* variables set by the caller.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DASHVIEW_PAGE_SIZE", "5")
	t.Setenv("DASHVIEW_DB", "")
	t.Setenv("DASHVIEW_SEED", "")
	t.Setenv("DASHVIEW_LOG_LEVEL", "error")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "dashview", cmd.Use)
	assert.Contains(t, cmd.Long, "built-in demo data")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"view", "stats", "import", "test", "serve"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	pageSizeFlag := cmd.PersistentFlags().Lookup("page-size")
	require.NotNil(t, pageSizeFlag)
	assert.Equal(t, "5", pageSizeFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("seed"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("db"))
}

func TestViewCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	viewCmd, _, err := cmd.Find([]string{"view"})
	require.NoError(t, err)

	pageFlag := viewCmd.Flags().Lookup("page")
	require.NotNil(t, pageFlag)
	assert.Equal(t, "1", pageFlag.DefValue)

	sortFlag := viewCmd.Flags().Lookup("sort")
	require.NotNil(t, sortFlag)
	assert.Equal(t, "s", sortFlag.Shorthand)

	require.NotNil(t, viewCmd.Flags().Lookup("query"))
}

func TestStatsCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	statsCmd, _, err := cmd.Find([]string{"stats"})
	require.NoError(t, err)

	scopeFlag := statsCmd.Flags().Lookup("scope")
	require.NotNil(t, scopeFlag)
	assert.Equal(t, "all", scopeFlag.DefValue)
}

func TestServeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	serveCmd, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addrFlag := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addrFlag)
	assert.Equal(t, "", addrFlag.DefValue)
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, err := execute(t, "--format", "invalid", "view")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestEnvironmentFillsUnsetFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("DASHVIEW_PAGE_SIZE", "3")

	out, err := execute(t, "view")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 4")

	out, err = execute(t, "--page-size", "4", "view")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 3")
}

func TestBadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DASHVIEW_PAGE_SIZE", "many")

	_, err := execute(t, "view")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "parse env")
}
