package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/go-leo/decorators/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, argv ...string) string {
	t.Helper()
	old := plugin.SetRegistry(plugin.NewRegistry())
	t.Cleanup(func() { plugin.SetRegistry(old) })

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(argv)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestDemo(t *testing.T) {
	out := execute(t, "demo", "--delay", "0", "--times", "3", "--name", "Alice")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)

	assert.Equal(t, `Calling greet("Alice", greeting="Hi")`, lines[0])
	assert.Equal(t, "Call 1 of greet", lines[1])
	assert.Equal(t, "Call 2 of greet", lines[2])
	assert.Equal(t, "Call 3 of greet", lines[3])
	assert.Equal(t, `greet() returns "Hi Alice"`, lines[4])
	assert.Regexp(t, `^Finished 'greet' in \d+\.\d{4} seconds$`, lines[5])
	assert.Equal(t, "Hi Alice", lines[6])
	assert.Regexp(t, `^Finished 'waste_time' in \d+\.\d{4} seconds$`, lines[7])
	assert.Equal(t, "waste_time(1000) = 332833500", lines[8])
	assert.Equal(t, "greet was called 3 times", lines[9])
}

func TestDemoJSON(t *testing.T) {
	out := execute(t, "demo", "--delay", "0", "--times", "1", "--json")
	assert.Contains(t, out, `Calling greet("Bob", greeting="Hi")`)
	assert.Contains(t, out, `greet() returns "Hi Bob"`)
}

func TestDemoLog(t *testing.T) {
	out := execute(t, "demo", "--delay", "0", "--times", "1", "--log")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "Call 1 of greet")
	assert.Contains(t, out, `"count": 1`)
}

func TestPlugins(t *testing.T) {
	out := execute(t, "plugins")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "greet "))
	assert.Contains(t, lines[0], "Greets a name.")
	assert.True(t, strings.HasPrefix(lines[1], "shout "))
	assert.True(t, strings.HasPrefix(lines[2], "waste_time "))
}
