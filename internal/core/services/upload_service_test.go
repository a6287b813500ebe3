package services_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// fakeBlobStore records Put calls and can be told to fail specific paths.
type fakeBlobStore struct {
	mu       sync.Mutex
	puts     []string
	failWhen func(path string) bool
}

func (f *fakeBlobStore) Put(ctx context.Context, path string, r io.Reader) error {
	if f.failWhen != nil && f.failWhen(path) {
		return fmt.Errorf("put %s: storage unavailable", path)
	}
	if _, err := io.ReadAll(r); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, path)
	return nil
}

func (f *fakeBlobStore) URL(path string) string {
	return "http://localhost/files/" + path
}

// --- Test Suite ---
type UploadServiceTestSuite struct {
	suite.Suite
	blobs   *fakeBlobStore
	service portssvc.UploadSvcFacade
	ownerID string
}

func (suite *UploadServiceTestSuite) SetupTest() {
	suite.blobs = &fakeBlobStore{}
	suite.service = services.NewUploadService(suite.blobs)
	suite.ownerID = uuid.NewString()
}

func (suite *UploadServiceTestSuite) stageDocument(name string) error {
	return suite.service.StageFile(context.Background(), suite.ownerID, domain.StagedFile{
		Kind:     domain.UploadDocument,
		Filename: name,
		Content:  []byte("content of " + name),
	})
}

func (suite *UploadServiceTestSuite) TestStageFile_FourthOfAKindRefused() {
	ctx := context.Background()

	suite.Require().NoError(suite.stageDocument("a.pdf"))
	suite.Require().NoError(suite.stageDocument("b.pdf"))
	suite.Require().NoError(suite.stageDocument("c.pdf"))

	err := suite.stageDocument("d.pdf")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// The first three are untouched.
	staged := suite.service.ListStaged(ctx, suite.ownerID)
	suite.Len(staged, 3)
	suite.Equal("a.pdf", staged[0].Filename)
	suite.Equal("c.pdf", staged[2].Filename)

	// The cap is per kind: images still have room.
	err = suite.service.StageFile(ctx, suite.ownerID, domain.StagedFile{
		Kind:     domain.UploadImage,
		Filename: "receipt.jpg",
		Content:  []byte{0xff, 0xd8},
	})
	suite.NoError(err)
}

func (suite *UploadServiceTestSuite) TestStageFile_UnknownKind() {
	err := suite.service.StageFile(context.Background(), suite.ownerID, domain.StagedFile{
		Kind:     domain.UploadKind("video"),
		Filename: "clip.mp4",
	})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UploadServiceTestSuite) TestUnstage() {
	ctx := context.Background()
	suite.Require().NoError(suite.stageDocument("a.pdf"))
	suite.Require().NoError(suite.stageDocument("b.pdf"))

	suite.Require().NoError(suite.service.Unstage(ctx, suite.ownerID, domain.UploadDocument, 0))

	staged := suite.service.ListStaged(ctx, suite.ownerID)
	suite.Len(staged, 1)
	suite.Equal("b.pdf", staged[0].Filename)

	err := suite.service.Unstage(ctx, suite.ownerID, domain.UploadDocument, 5)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UploadServiceTestSuite) TestCommitBatch_EmptyBatch() {
	results, err := suite.service.CommitBatch(context.Background(), suite.ownerID)
	suite.Require().Error(err)
	suite.Nil(results)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *UploadServiceTestSuite) TestCommitBatch_AllSucceed() {
	ctx := context.Background()
	suite.Require().NoError(suite.stageDocument("invoice.pdf"))
	suite.Require().NoError(suite.service.StageFile(ctx, suite.ownerID, domain.StagedFile{
		Kind:     domain.UploadImage,
		Filename: "shopfront.jpg",
		Content:  []byte{0xff, 0xd8},
	}))

	results, err := suite.service.CommitBatch(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)

	suite.Equal("documents/invoice.pdf", results[0].Path)
	suite.Equal("http://localhost/files/documents/invoice.pdf", results[0].URL)
	suite.Empty(results[0].Error)

	// Images get a fresh millisecond-timestamp name, not the original one.
	suite.Regexp(`^images/\d+\.jpg$`, results[1].Path)
	suite.Empty(results[1].Error)

	suite.Equal([]string{results[0].Path, results[1].Path}, suite.blobs.puts)
}

func (suite *UploadServiceTestSuite) TestCommitBatch_FailureMidwayKeepsEarlierUploads() {
	ctx := context.Background()
	suite.Require().NoError(suite.stageDocument("a.pdf"))
	suite.Require().NoError(suite.stageDocument("b.pdf"))
	suite.Require().NoError(suite.stageDocument("c.pdf"))

	suite.blobs.failWhen = func(path string) bool {
		return strings.HasSuffix(path, "b.pdf")
	}

	results, err := suite.service.CommitBatch(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 3)

	// a.pdf uploaded, b.pdf failed, c.pdf still attempted and uploaded:
	// the commit continues past failures and rolls nothing back.
	suite.Empty(results[0].Error)
	suite.NotEmpty(results[1].Error)
	suite.Empty(results[1].URL)
	suite.Empty(results[2].Error)
	suite.Equal([]string{"documents/a.pdf", "documents/c.pdf"}, suite.blobs.puts)
}

func (suite *UploadServiceTestSuite) TestCommitBatch_DoesNotClearTheBatch() {
	ctx := context.Background()
	suite.Require().NoError(suite.stageDocument("invoice.pdf"))

	_, err := suite.service.CommitBatch(ctx, suite.ownerID)
	suite.Require().NoError(err)

	// Still staged: a second commit re-uploads it.
	suite.Len(suite.service.ListStaged(ctx, suite.ownerID), 1)

	_, err = suite.service.CommitBatch(ctx, suite.ownerID)
	suite.Require().NoError(err)
	suite.Equal([]string{"documents/invoice.pdf", "documents/invoice.pdf"}, suite.blobs.puts)
}

func (suite *UploadServiceTestSuite) TestBatchesAreOwnerScoped() {
	ctx := context.Background()
	otherOwner := uuid.NewString()

	suite.Require().NoError(suite.stageDocument("mine.pdf"))

	suite.Empty(suite.service.ListStaged(ctx, otherOwner))
	suite.Len(suite.service.ListStaged(ctx, suite.ownerID), 1)
}

func TestUploadServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UploadServiceTestSuite))
}
