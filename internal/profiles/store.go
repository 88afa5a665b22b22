// Package profiles loads candidate profiles from the on-disk profile store.
// The store is read-only to the pipeline: one JSON document per profile
// identifier, re-read on every request.
package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-forge/internal/types"
)

// DefaultDir is the profile directory used when none is configured.
const DefaultDir = "resumes"

// NotFoundError reports an unknown profile identifier.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// Store reads profiles from a directory of <name>.json files.
type Store struct {
	dir      string
	validate *validator.Validate
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{
		dir:      dir,
		validate: validator.New(),
	}
}

// Load reads, decodes, and validates the profile for the given identifier.
// Returns *NotFoundError when no file exists for it.
func (s *Store) Load(name string) (*types.Profile, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, &NotFoundError{Name: name}
	}

	path := filepath.Join(s.dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if err := s.validate.Struct(&profile); err != nil {
		return nil, fmt.Errorf("profile %s failed validation: %w", name, err)
	}

	return &profile, nil
}
