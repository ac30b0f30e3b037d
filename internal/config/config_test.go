package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and the defaults filled in by Validate.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing version.
	args := &BuildArgs{Configuration: "Release"}
	require.ErrorIs(t, Validate(args), ErrVersionRequired)

	// Configuration is only needed by signing steps.
	args = &BuildArgs{Version: []string{"7", "1"}}
	require.NoError(t, Validate(args))
	require.ErrorIs(t, RequireConfiguration(args), ErrConfigurationRequired)
	require.ErrorIs(t, RequireConfiguration(&BuildArgs{Configuration: "  "}), ErrConfigurationRequired)
	require.NoError(t, RequireConfiguration(&BuildArgs{Configuration: "Release"}))
	require.Error(t, RequireConfiguration(nil))

	// Bad publisher URL.
	args = &BuildArgs{
		Version:       []string{"7"},
		Configuration: "Release",
		Sign:          SignConfig{URL: "not a url"},
	}
	require.Error(t, Validate(args))

	// Negative timeout.
	args = &BuildArgs{
		Version:       []string{"7"},
		Configuration: "Release",
		Sign:          SignConfig{Timeout: -time.Second},
	}
	require.Error(t, Validate(args))

	// Defaults.
	args = &BuildArgs{
		Version:       []string{"7", "1", "9", "12345"},
		Configuration: "Release",
		AppName:       "Firestorm OS",
	}
	require.NoError(t, Validate(args))
	require.Equal(t, DefaultChannel, args.Channel)
	require.Equal(t, "FirestormOS.exe", args.FinalExe)
	require.Equal(t, DefaultSignTool, args.Sign.Tool)
	require.Equal(t, DefaultSignSubject, args.Sign.Subject)
	require.Equal(t, DefaultSignDescription, args.Sign.Description)
	require.Equal(t, DefaultSignURL, args.Sign.URL)
	require.Zero(t, args.Sign.Timeout)

	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures build arguments are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "args.yaml")

	grid := "agni"
	args := &BuildArgs{
		Version:       []string{"7", "1", "9", "12345"},
		ViewerFlavor:  "oss",
		Grid:          &grid,
		M64:           true,
		Configuration: "Release",
		Channel:       "Firestorm Beta",
	}

	require.NoError(t, Save(path, args))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, args.Version, loaded.Version)
	require.Equal(t, "oss", loaded.ViewerFlavor)
	require.NotNil(t, loaded.Grid)
	require.Equal(t, "agni", *loaded.Grid)
	require.True(t, loaded.M64)
	require.Equal(t, "Firestorm Beta", loaded.Channel)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_OptionalKeys verifies that a null grid counts as absent while any m64 key,
// whatever its value, marks a 64-bit build.
func TestLoad_OptionalKeys(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		extra   string
		wantM64 bool
	}{
		{name: "absent", extra: "", wantM64: false},
		{name: "bare key", extra: "m64:\n", wantM64: true},
		{name: "tilde", extra: "m64: ~\n", wantM64: true},
		{name: "null", extra: "m64: null\n", wantM64: true},
		{name: "int", extra: "m64: 1\n", wantM64: true},
		{name: "false", extra: "m64: false\n", wantM64: true},
		{name: "string", extra: "m64: \"no\"\n", wantM64: true},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "args.yaml")
			contents := "version: [\"7\", \"1\"]\nconfiguration: Release\ngrid: null\n" + tc.extra
			require.NoError(t, os.WriteFile(path, []byte(contents), DefaultFilePermissions))

			loaded, err := Load(path)
			require.NoError(t, err)
			require.Nil(t, loaded.Grid)
			require.Equal(t, tc.wantM64, loaded.M64)
			require.Equal(t, []string{"7", "1"}, loaded.Version)
			require.Equal(t, "Release", loaded.Configuration)
		})
	}
}

// TestSave_M64Presence verifies the m64 key is written only for 64-bit builds and survives a reload.
func TestSave_M64Presence(t *testing.T) {
	t.Parallel()

	for _, m64 := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "args.yaml")
		require.NoError(t, Save(path, &BuildArgs{Version: []string{"7"}, M64: m64}))

		contents, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, m64, strings.Contains(string(contents), "m64:"))

		loaded, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, m64, loaded.M64)
		require.Equal(t, DefaultSignTool, loaded.Sign.Tool)
	}
}

// TestLoad_Missing verifies Load fails for a missing file.
func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestParseVersion checks splitting of dotted versions.
func TestParseVersion(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"7", "1", "9", "12345"}, ParseVersion("7.1.9.12345"))
	require.Equal(t, []string{"7"}, ParseVersion(" 7 "))
	require.Nil(t, ParseVersion(""))
}
