package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore persists uploaded media files under a local root that is served
// statically at /uploads.
type DiskStore struct {
	root string
}

// NewDiskStore creates the upload root if needed and returns a store for it.
func NewDiskStore(root string) (*DiskStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &DiskStore{root: abs}, nil
}

// Root returns the absolute upload root, for static serving.
func (s *DiskStore) Root() string {
	return s.root
}

// SaveProjectFile writes r under projects/<projectID>/ using a server-generated
// name and returns the public URL path. The stored name is prefixed with a
// random hex string so two uploads with the same original filename never
// collide, and the client-supplied name is reduced to its base to rule out
// path traversal.
func (s *DiskStore) SaveProjectFile(projectID, originalName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, "projects", projectID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create project dir: %w", err)
	}

	name := randomHex() + "_" + sanitizeName(originalName)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return "/uploads/projects/" + projectID + "/" + name, nil
}

// RemoveFile deletes the file behind a URL previously returned by
// SaveProjectFile. Paths escaping the upload root are refused.
func (s *DiskStore) RemoveFile(fileURL string) error {
	rel := strings.TrimPrefix(fileURL, "/uploads/")
	path := filepath.Join(s.root, filepath.FromSlash(rel))
	if !strings.HasPrefix(path, s.root+string(os.PathSeparator)) {
		return fmt.Errorf("path escapes upload root: %s", fileURL)
	}
	return os.Remove(path)
}

func randomHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func sanitizeName(name string) string {
	base := filepath.Base(filepath.Clean(strings.ReplaceAll(name, "\\", "/")))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "file"
	}
	return base
}
