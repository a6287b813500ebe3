package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/biztrackr/biz_tracker_app/internal/handlers"
	"github.com/biztrackr/biz_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UploadService ---
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) StageFile(ctx context.Context, ownerID string, file domain.StagedFile) error {
	args := m.Called(ctx, ownerID, file)
	return args.Error(0)
}

func (m *MockUploadService) ListStaged(ctx context.Context, ownerID string) []domain.StagedFile {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.StagedFile)
}

func (m *MockUploadService) Unstage(ctx context.Context, ownerID string, kind domain.UploadKind, idx int) error {
	args := m.Called(ctx, ownerID, kind, idx)
	return args.Error(0)
}

func (m *MockUploadService) CommitBatch(ctx context.Context, ownerID string) ([]domain.UploadResult, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UploadResult), args.Error(1)
}

var _ portssvc.UploadSvcFacade = (*MockUploadService)(nil)

// generateToken signs an HS256 JWT for the given user.
func generateToken(t *testing.T, userID, secret string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

// --- Test Suite ---
type UploadHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockUploadService *MockUploadService
	jwtSecret         string
}

func (suite *UploadHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockUploadService = new(MockUploadService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterUploadRoutes(v1, suite.mockUploadService)
}

func (suite *UploadHandlerTestSuite) doRequest(method, url, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *UploadHandlerTestSuite) TestCommit_NoToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/uploads/commit", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockUploadService.AssertNotCalled(suite.T(), "CommitBatch", mock.Anything, mock.Anything)
}

func (suite *UploadHandlerTestSuite) TestCommit_NothingStaged() {
	userID := uuid.NewString()
	token := generateToken(suite.T(), userID, suite.jwtSecret)

	// An empty batch is a caller mistake, not a server failure.
	suite.mockUploadService.On("CommitBatch", mock.Anything, userID).
		Return(nil, fmt.Errorf("nothing staged to upload: %w", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/uploads/commit", token)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp["error"], "nothing staged")
	suite.mockUploadService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestCommit_Success() {
	userID := uuid.NewString()
	token := generateToken(suite.T(), userID, suite.jwtSecret)

	results := []domain.UploadResult{
		{Kind: domain.UploadDocument, Filename: "invoice.pdf", Path: "documents/invoice.pdf", URL: "/files/documents/invoice.pdf"},
		{Kind: domain.UploadImage, Filename: "shelf.jpg", Error: "disk full"},
	}
	suite.mockUploadService.On("CommitBatch", mock.Anything, userID).Return(results, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/uploads/commit", token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CommitBatchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Results, 2)
	suite.Equal("/files/documents/invoice.pdf", resp.Results[0].URL)
	suite.Equal("disk full", resp.Results[1].Error)
	suite.mockUploadService.AssertExpectations(suite.T())
}

func (suite *UploadHandlerTestSuite) TestUnstage_UnknownKind() {
	userID := uuid.NewString()
	token := generateToken(suite.T(), userID, suite.jwtSecret)

	w := suite.doRequest(http.MethodDelete, "/api/v1/uploads/video/0", token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUploadService.AssertNotCalled(suite.T(), "Unstage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UploadHandlerTestSuite))
}
