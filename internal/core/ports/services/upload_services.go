package services

import (
	"context"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
)

// UploadSvcFacade manages a user's staged upload batch and its commit.
//
// Staged files live only in memory, like the picker state of the source app.
// Commit is strictly sequential and non-transactional: earlier uploads stay
// committed if a later one fails, and re-committing re-uploads everything
// still staged.
type UploadSvcFacade interface {
	// StageFile adds a picked file to the owner's batch. A fourth file of the
	// same kind is refused with ErrValidation, leaving the batch untouched.
	StageFile(ctx context.Context, ownerID string, file domain.StagedFile) error

	// ListStaged returns the owner's current batch.
	ListStaged(ctx context.Context, ownerID string) []domain.StagedFile

	// Unstage removes the idx-th staged file of the given kind.
	Unstage(ctx context.Context, ownerID string, kind domain.UploadKind, idx int) error

	// CommitBatch uploads the staged files one at a time and reports a
	// per-item result list.
	CommitBatch(ctx context.Context, ownerID string) ([]domain.UploadResult, error)
}
