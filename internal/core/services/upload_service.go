package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	portstorage "github.com/biztrackr/biz_tracker_app/internal/core/ports/storage"
)

type uploadService struct {
	blobs portstorage.BlobStore

	mu      sync.Mutex
	batches map[string]*stagedBatch // keyed by owner id
}

type stagedBatch struct {
	documents []domain.StagedFile
	images    []domain.StagedFile
}

// NewUploadService creates the upload staging/commit service.
func NewUploadService(blobs portstorage.BlobStore) portssvc.UploadSvcFacade {
	return &uploadService{
		blobs:   blobs,
		batches: make(map[string]*stagedBatch),
	}
}

var _ portssvc.UploadSvcFacade = (*uploadService)(nil)

func (s *uploadService) batchFor(ownerID string) *stagedBatch {
	b, ok := s.batches[ownerID]
	if !ok {
		b = &stagedBatch{}
		s.batches[ownerID] = b
	}
	return b
}

func (s *uploadService) StageFile(ctx context.Context, ownerID string, file domain.StagedFile) error {
	if file.Kind != domain.UploadDocument && file.Kind != domain.UploadImage {
		return fmt.Errorf("unknown upload kind %q: %w", file.Kind, apperrors.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.batchFor(ownerID)
	slot := &b.documents
	if file.Kind == domain.UploadImage {
		slot = &b.images
	}
	if len(*slot) >= domain.MaxStagedPerKind {
		return fmt.Errorf("at most %d %ss can be staged: %w", domain.MaxStagedPerKind, file.Kind, apperrors.ErrValidation)
	}
	*slot = append(*slot, file)
	return nil
}

func (s *uploadService) ListStaged(ctx context.Context, ownerID string) []domain.StagedFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.batchFor(ownerID)
	out := make([]domain.StagedFile, 0, len(b.documents)+len(b.images))
	out = append(out, b.documents...)
	out = append(out, b.images...)
	return out
}

func (s *uploadService) Unstage(ctx context.Context, ownerID string, kind domain.UploadKind, idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.batchFor(ownerID)
	slot := &b.documents
	if kind == domain.UploadImage {
		slot = &b.images
	}
	if idx < 0 || idx >= len(*slot) {
		return fmt.Errorf("no staged %s at index %d: %w", kind, idx, apperrors.ErrNotFound)
	}
	*slot = append((*slot)[:idx], (*slot)[idx+1:]...)
	return nil
}

// CommitBatch uploads the staged files strictly one at a time. Each item gets
// its own result; a failure does not roll back earlier uploads. The batch is
// left staged afterwards, so a re-commit re-uploads everything.
func (s *uploadService) CommitBatch(ctx context.Context, ownerID string) ([]domain.UploadResult, error) {
	s.mu.Lock()
	b := s.batchFor(ownerID)
	files := make([]domain.StagedFile, 0, len(b.documents)+len(b.images))
	files = append(files, b.documents...)
	files = append(files, b.images...)
	s.mu.Unlock()

	if len(files) == 0 {
		return nil, fmt.Errorf("nothing staged to upload: %w", apperrors.ErrValidation)
	}

	results := make([]domain.UploadResult, 0, len(files))
	for _, f := range files {
		res := domain.UploadResult{Kind: f.Kind, Filename: f.Filename}

		var blobPath string
		switch f.Kind {
		case domain.UploadImage:
			blobPath = fmt.Sprintf("images/%d.jpg", time.Now().UnixMilli())
		default:
			blobPath = path.Join("documents", path.Base(f.Filename))
		}

		if err := s.blobs.Put(ctx, blobPath, bytes.NewReader(f.Content)); err != nil {
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		res.Path = blobPath
		res.URL = s.blobs.URL(blobPath)
		results = append(results, res)
	}
	return results, nil
}
