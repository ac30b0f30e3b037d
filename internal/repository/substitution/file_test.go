package substitution

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/viewer-manifest/internal/config"
	"github.com/oshokin/viewer-manifest/internal/domain/manifest"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	s, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, s)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns the same mapping.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "subst.yaml")
	repo := NewFileRepository(file)

	want := manifest.Substitutions{
		manifest.KeyVersion:       "7.1.9.12345",
		manifest.KeyGrid:          "",
		manifest.KeyGridCaps:      "",
		manifest.KeyInstallerFile: "Phoenix_Firestorm_Setup.exe",
	}

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = os.Stat(file)
	require.NoError(t, err)
}

// TestFileRepository_BadYAML verifies decode errors surface.
func TestFileRepository_BadYAML(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "subst.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- not\n- a map\n"), config.DefaultFilePermissions))

	_, err := NewFileRepository(file).Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
