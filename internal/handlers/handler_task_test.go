package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/biztrackr/biz_tracker_app/internal/handlers"
	"github.com/biztrackr/biz_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TaskService ---
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) CreateTask(ctx context.Context, ownerID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskService) WatchTasks(ctx context.Context, ownerID string) (<-chan []domain.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan []domain.Task), args.Error(1)
}

var _ portssvc.TaskSvcFacade = (*MockTaskService)(nil)

// --- Test Suite ---
type TaskHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTaskService *MockTaskService
	jwtSecret       string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *TaskHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTaskService = new(MockTaskService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTaskRoutes(v1, suite.mockTaskService)
}

func (suite *TaskHandlerTestSuite) doRequest(method, url, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TaskHandlerTestSuite) TestCreateTask_NoToken() {
	w := suite.doRequest(http.MethodPost, "/api/v1/tasks", "", []byte(`{"name":"x","due":"2026-09-15"}`))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTaskService.AssertNotCalled(suite.T(), "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	reqBody := dto.CreateTaskRequest{
		Name:   "Restock shelves",
		Due:    "2026-09-15",
		Budget: decimal.NewFromInt(500),
	}
	created := &domain.Task{
		TaskID:    "1756400000000",
		OwnerID:   userID,
		Name:      reqBody.Name,
		Due:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Budget:    reqBody.Budget,
		CreatedAt: time.Now(),
	}
	// Decimals compare by value, not by representation.
	suite.mockTaskService.On("CreateTask", mock.Anything, userID, mock.MatchedBy(func(r dto.CreateTaskRequest) bool {
		return r.Name == reqBody.Name && r.Due == reqBody.Due && r.Budget.Equal(reqBody.Budget)
	})).Return(created, nil).Once()

	body, err := json.Marshal(reqBody)
	suite.Require().NoError(err)
	w := suite.doRequest(http.MethodPost, "/api/v1/tasks", token, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TaskResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TaskID, resp.ID)
	suite.Equal("2026-09-15", resp.Due)
	suite.mockTaskService.AssertExpectations(suite.T())
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MissingRequiredField() {
	token := suite.generateTestToken(uuid.NewString())

	// Name missing: binding fails before the service is touched.
	w := suite.doRequest(http.MethodPost, "/api/v1/tasks", token, []byte(`{"due":"2026-09-15"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTaskService.AssertNotCalled(suite.T(), "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_MalformedBudget() {
	token := suite.generateTestToken(uuid.NewString())

	// A non-numeric budget fails decimal binding with 400, it does not
	// propagate as a garbage value.
	w := suite.doRequest(http.MethodPost, "/api/v1/tasks", token, []byte(`{"name":"x","due":"2026-09-15","budget":"not-a-number"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTaskService.AssertNotCalled(suite.T(), "CreateTask", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskHandlerTestSuite) TestListTasks_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	tasks := []domain.Task{
		{TaskID: "1756400000000", OwnerID: userID, Name: "Restock shelves", Due: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockTaskService.On("ListTasks", mock.Anything, userID).Return(tasks, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/tasks", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.TaskResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Restock shelves", resp[0].Name)
	suite.mockTaskService.AssertExpectations(suite.T())
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
