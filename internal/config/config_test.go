package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.UploadDelay())
	assert.Equal(t, 3*time.Second, cfg.AnswerDelay())
	assert.Zero(t, cfg.Simulation.FailureRate)

	// The default file must now exist and reload identically.
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `simulation:
  uploadDelayMs: 50
  answerDelayMs: 75
  failureRate: 0.25
log:
  path: /tmp/assistant.log
browser:
  startDir: /papers
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.UploadDelay())
	assert.Equal(t, 75*time.Millisecond, cfg.AnswerDelay())
	assert.Equal(t, 0.25, cfg.Simulation.FailureRate)
	assert.Equal(t, "/tmp/assistant.log", cfg.Log.Path)
	assert.Equal(t, "/papers", cfg.Browser.StartDir)
}

func TestLoadRejectsBadFailureRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  failureRate: 1.5\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failureRate")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation: [oops"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultPathHonorsHomeOverride(t *testing.T) {
	t.Setenv("SMART_ASSISTANT_HOME", "/opt/assistant")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/assistant", "config.yaml"), path)
}
