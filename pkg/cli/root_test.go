package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/softwarewrighter/system-monitor/pkg/report"
)

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return Root().Run(t.Context(), append([]string{name}, args...))
}

func TestQueryCommands(t *testing.T) {
	for _, cmd := range []string{"system", "memory", "disks", "cpu"} {
		t.Run(cmd, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.json")

			err := runCLI(t, "--sandbox", cmd, "--output", path)
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, json.Valid(data), "expected valid JSON, got %q", data)
		})
	}
}

func TestSystemCommandSandboxIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, runCLI(t, "--sandbox", "system", "--output", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var sys map[string]any
	require.NoError(t, json.Unmarshal(data, &sys))
	assert.Equal(t, "Sandbox", sys["os"])
	assert.Equal(t, "sandbox", sys["hostname"])
	assert.Equal(t, "N/A", sys["kernel_version"])
}

func TestListCommandsEmitArrays(t *testing.T) {
	for _, cmd := range []string{"disks", "cpu"} {
		t.Run(cmd, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.json")

			require.NoError(t, runCLI(t, "--sandbox", cmd, "--output", path))

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var list []map[string]any
			require.NoError(t, json.Unmarshal(data, &list))
			assert.Empty(t, list)
		})
	}
}

func TestReportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, runCLI(t, "--sandbox", "report", "--output", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal(data, &rep))
	assert.Equal(t, "Sandbox", rep.System.OS)
	assert.False(t, rep.CapturedAt.IsZero())
	assert.NotNil(t, rep.Disks)
	assert.NotNil(t, rep.Cores)
}

func TestWatchCommandCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, runCLI(t, "--sandbox", "watch", "--count", "2", "--interval", "10ms", "--output", path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := json.NewDecoder(f)
	captures := 0
	for dec.More() {
		var rep report.Report
		require.NoError(t, dec.Decode(&rep))
		captures++
	}
	assert.Equal(t, 2, captures)
}

func TestUnknownFormat(t *testing.T) {
	err := runCLI(t, "--sandbox", "system", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, runCLI(t, "--sandbox", "memory", "--format", "yaml", "--output", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "usage_percent:")
}
