package storage

import (
	"context"
	"io"
)

// BlobStore abstracts the external blob storage the upload flow writes to.
// Paths are slash-separated keys like "documents/report.pdf" or
// "images/1716035633123.jpg".
type BlobStore interface {
	// Put writes the blob at the given path, overwriting any existing blob.
	Put(ctx context.Context, path string, r io.Reader) error
	// URL returns the retrieval URL for a previously written path.
	URL(path string) string
}
