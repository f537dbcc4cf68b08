package media

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalStore writes generated media under a directory served at a base URL
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a LocalStore
func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the directory files are written to
func (s *LocalStore) Dir() string {
	return s.dir
}

// ExtensionFor maps an image MIME type to a file extension
func ExtensionFor(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}

// Save writes data as name and returns its public URL
func (s *LocalStore) Save(name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("invalid media file name")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write media: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close media: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to store media: %w", err)
	}

	return path.Join(s.baseURL, name), nil
}
