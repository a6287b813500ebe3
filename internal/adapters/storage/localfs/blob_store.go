// Package localfs implements the blob store port on the local filesystem.
// Blobs land under a configured root directory and are served back via a
// static file route, so the retrieval URL is just base URL + path.
package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	portstorage "github.com/biztrackr/biz_tracker_app/internal/core/ports/storage"
)

type BlobStore struct {
	root    string
	baseURL string
}

// New creates a filesystem-backed blob store rooted at root. The directory is
// created if it does not exist.
func New(root, baseURL string) (*BlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root %s: %w", root, err)
	}
	return &BlobStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

var _ portstorage.BlobStore = (*BlobStore)(nil)

func (s *BlobStore) Put(ctx context.Context, path string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cleaned := filepath.Clean("/" + path) // force the path under root
	dest := filepath.Join(s.root, cleaned)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create blob file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	return nil
}

func (s *BlobStore) URL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// Root exposes the storage root so the server can mount a static file route.
func (s *BlobStore) Root() string {
	return s.root
}
