package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommand_PrintsMergedConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.yaml"), []byte("server:\n  port: 4321\n"), 0o600))
	t.Setenv("APP_LOGGING__LEVEL", "debug")

	var out bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--config-dir", dir})

	require.NoError(t, cmd.Execute())

	var got struct {
		Server struct {
			Port int `json:"port"`
		} `json:"server"`
		Logging struct {
			Level string `json:"level"`
		} `json:"logging"`
		Files []string `json:"files"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 4321, got.Server.Port)
	assert.Equal(t, "debug", got.Logging.Level)
	assert.Len(t, got.Files, 1)
}

func TestConfigCommand_InvalidConfig(t *testing.T) {
	t.Setenv("APP_SERVER__PORT", "0")

	cmd := newRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "--config-dir", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_SERVER__PORT")
}

func TestRootCommand_Version(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd("1.2.3")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
}
