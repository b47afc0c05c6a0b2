package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_OutputContract(t *testing.T) {
	t.Setenv("NETMON_ADDRESS", "192.168.1.1")
	t.Setenv("NETMON_PORT", "8080")
	t.Setenv("LOG_LEVEL", "ERROR")

	var buf bytes.Buffer
	code, err := run(&buf)
	require.NoError(t, err)
	require.Equal(t, exitOK, code)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.Equal(t, "=== Network Monitor ===", lines[0])
	require.Equal(t, "Program completed successfully!", lines[len(lines)-1])
	require.Contains(t, out, "TCP Connection: 192.168.1.1:8080\n")

	// Banner, then system report, then endpoint, then footer.
	require.Less(t,
		strings.Index(out, "=== Network Monitor ==="),
		strings.Index(out, "TCP Connection:"))
	require.Less(t,
		strings.Index(out, "TCP Connection:"),
		strings.Index(out, "Program completed successfully!"))
}

func TestRun_EndpointFromEnvironment(t *testing.T) {
	t.Setenv("NETMON_ADDRESS", "10.1.2.3")
	t.Setenv("NETMON_PORT", "9000")
	t.Setenv("LOG_LEVEL", "ERROR")

	var buf bytes.Buffer
	code, err := run(&buf)
	require.NoError(t, err)
	require.Equal(t, exitOK, code)
	require.Contains(t, buf.String(), "TCP Connection: 10.1.2.3:9000\n")
}

func TestRun_MalformedEnvironmentFailsConfig(t *testing.T) {
	t.Setenv("NETMON_PORT", "eighty-eighty")

	var buf bytes.Buffer
	code, err := run(&buf)
	require.Error(t, err)
	require.Equal(t, exitConfig, code)
	require.Empty(t, buf.String())
}
