package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ImageStore keeps raw image blobs in a flat directory, named by capture
// timestamp. Same-second captures overwrite each other; callers accept that.
type ImageStore struct {
	dir string
}

// NewImageStore ensures the blob directory exists.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir %q: %w", dir, err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save writes the blob under name, replacing any existing file.
func (s *ImageStore) Save(name string, data []byte) error {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write image %q: %w", name, err)
	}
	return nil
}

// Recent returns up to n jpeg filenames, newest first. Timestamp-derived
// names sort lexically in capture order, so a reverse name sort is enough.
func (s *ImageStore) Recent(n int) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if len(names) > n {
		names = names[:n]
	}
	return names, nil
}

// Path resolves name to a servable file path. The basename restriction keeps
// requests inside the blob directory.
func (s *ImageStore) Path(name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("image %q: %w", name, err)
	}
	return path, nil
}
