package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lazyq/internal/samples"
	"github.com/roach88/lazyq/internal/seq"
	"github.com/roach88/lazyq/internal/testutil"
	"github.com/roach88/lazyq/internal/value"
)

// testRegistry holds a few samples with known outputs.
func testRegistry(t *testing.T) *samples.Registry {
	t.Helper()
	r := samples.NewRegistry()
	for _, s := range []samples.Sample{
		{Name: "words", Group: samples.GroupProjection, Description: "Three words.", Run: func() (value.Value, error) {
			return value.Strings("a", "b", "c"), nil
		}},
		{Name: "answer", Group: samples.GroupQuantifier, Description: "A yes.", Run: func() (value.Value, error) {
			return value.Bool(true), nil
		}},
		{Name: "single-fails", Group: samples.GroupElement, Description: "Two matches.", Run: func() (value.Value, error) {
			_, err := seq.Single(seq.FromSlice(1, 1))
			return nil, err
		}},
		{Name: "faults", Group: samples.GroupElement, Description: "Source fault.", Run: func() (value.Value, error) {
			return nil, errors.New("disk on fire")
		}},
	} {
		require.NoError(t, r.Register(s))
	}
	return r
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, reg *samples.Registry, args ...string) (string, error) {
	t.Helper()
	opts := &RootOptions{Registry: reg, RunIDs: testutil.NewFixedIDGenerator("test-run")}
	cmd := newRootCommand(opts)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lazyq", cmd.Use)
	assert.Contains(t, cmd.Long, "lazy sequence engine")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"list", "run", "test"}

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
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, testRegistry(t), "list", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	runCmd, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	assert.NotNil(t, runCmd.Flags().Lookup("group"))
	all := runCmd.Flags().Lookup("all")
	require.NotNil(t, all)
	assert.Equal(t, "false", all.DefValue)
}

func TestTestCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	testCmd, _, err := cmd.Find([]string{"test"})
	require.NoError(t, err)

	for _, name := range []string{"golden", "update", "filter"} {
		assert.NotNil(t, testCmd.Flags().Lookup(name), name)
	}
}

func TestUUIDv7Generator(t *testing.T) {
	a := UUIDv7Generator{}.Generate()
	b := UUIDv7Generator{}.Generate()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
