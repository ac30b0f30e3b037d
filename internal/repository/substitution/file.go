package substitution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/viewer-manifest/internal/config"
	"github.com/oshokin/viewer-manifest/internal/domain/manifest"
)

// Repository defines persistence operations for substitution mappings.
type Repository interface {
	Load(ctx context.Context) (manifest.Substitutions, error)
	Save(ctx context.Context, subst manifest.Substitutions) error
}

// FileRepository stores a substitution mapping in a YAML file.
type FileRepository struct {
	// path is the filesystem location of the YAML file.
	path string
	// mu protects concurrent access to the file.
	mu sync.Mutex
}

// ErrNotFound is returned when the substitutions file does not exist.
var ErrNotFound = errors.New("substitutions not found")

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the mapping from disk.
func (r *FileRepository) Load(_ context.Context) (manifest.Substitutions, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read substitutions file: %w", err)
	}

	subst := make(manifest.Substitutions)
	if err = yaml.Unmarshal(contents, &subst); err != nil {
		return nil, fmt.Errorf("decode substitutions file: %w", err)
	}

	return subst, nil
}

// Save writes the mapping to disk.
func (r *FileRepository) Save(_ context.Context, subst manifest.Substitutions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(subst)
	if err != nil {
		return fmt.Errorf("encode substitutions: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write substitutions file: %w", err)
	}

	return nil
}
