package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	oevd "github.com/GPTx-global/oev-relay/cmd/oevd"
	"github.com/GPTx-global/oev-relay/oevd/config"
)

func TestConfigCmd(t *testing.T) {
	home := t.TempDir()

	rootCmd := oevd.NewRootCmd()
	rootCmd.SetArgs([]string{"config", "--home", home})
	require.NoError(t, rootCmd.Execute())

	require.FileExists(t, filepath.Join(home, config.FileName))
	require.Equal(t, home, config.Home())
}

func TestHomeFromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("OEVD_HOME", home)

	rootCmd := oevd.NewRootCmd()
	rootCmd.SetArgs([]string{"config"})
	require.NoError(t, rootCmd.Execute())

	require.FileExists(t, filepath.Join(home, config.FileName))
}

func TestMessageHashCmd(t *testing.T) {
	home := t.TempDir()

	var out bytes.Buffer
	rootCmd := oevd.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"bid", "message-hash",
		"0x1111111111111111111111111111111111111111111111111111111111111111",
		"1700000060",
		"0x2222222222222222222222222222222222222222",
		"1",
		"--home", home,
		"-o", "json",
	})
	require.NoError(t, rootCmd.Execute())
	require.Contains(t, out.String(), `"message_hash"`)
}

func TestInvalidConfig(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, config.FileName), []byte("[output]\nformat = \"xml\"\n"), 0644))

	rootCmd := oevd.NewRootCmd()
	rootCmd.SetArgs([]string{"config", "--home", home})
	require.Error(t, rootCmd.Execute())
}
