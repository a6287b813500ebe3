package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/core/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/biztrackr/biz_tracker_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- RegisterUser Tests ---
func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username:       "shopkeeper",
		Password:       "password123",
		Name:           "Shop Keeper",
		BusinessSector: "Products",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.Name == req.Name &&
			user.BusinessSector == domain.SectorProducts &&
			user.PasswordHash != "" && user.PasswordHash != req.Password
	})).Return(nil).Once()

	created, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username:       "taken",
		Password:       "password123",
		Name:           "Someone",
		BusinessSector: "Services",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	created, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---
func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "password123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "shopkeeper", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "shopkeeper").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "shopkeeper", password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "shopkeeper", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "shopkeeper").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "shopkeeper", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever1")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and wrong password are indistinguishable to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- GetUserByID Tests ---
func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByID(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateOAuthUser Tests ---
func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingProfile() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "pat@example.com", Name: "Pat"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "pat@example.com").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "pat@example.com", "Pat")

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_FirstSignIn() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "new@example.com" && user.Name == "New Person" && user.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "new@example.com", "New Person")

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	// Sector stays empty until the profile is completed.
	suite.Equal(domain.BusinessSector(""), user.BusinessSector)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(UserServiceTestSuite))
}

