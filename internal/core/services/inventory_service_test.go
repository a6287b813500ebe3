package services_test

import (
	"context"
	"testing"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/core/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InventoryRepository ---
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventoryRepository) FindItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, ownerID)
	var items []domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.InventoryItem)
	}
	return items, args.Error(1)
}

// --- Test Suite ---
type InventoryServiceTestSuite struct {
	suite.Suite
	mockInvRepo *MockInventoryRepository
	service     portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockInvRepo = new(MockInventoryRepository)
	suite.service = services.NewInventoryService(suite.mockInvRepo, services.NewChangefeed())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_ThresholdMirrorsQuantity() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateInventoryItemRequest{
		ItemID:            "SKU-001",
		ItemName:          "Detergent 1L",
		Quantity:          10,
		QuantityThreshold: 5, // submitted but ignored
		Price:             decimal.NewFromFloat(3.50),
	}

	suite.mockInvRepo.On("SaveItem", ctx, mock.MatchedBy(func(item domain.InventoryItem) bool {
		return item.OwnerID == ownerID && item.QuantityThreshold == 10
	})).Return(nil).Once()

	item, err := suite.service.CreateItem(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(item)
	// Shipped behavior: the persisted threshold equals the quantity, not the
	// submitted threshold.
	suite.Equal(10, item.QuantityThreshold)
	suite.NotEqual(req.QuantityThreshold, item.QuantityThreshold)
	suite.mockInvRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateItem_SaveError() {
	ctx := context.Background()
	req := dto.CreateInventoryItemRequest{
		ItemID:   "SKU-002",
		ItemName: "Soap bar",
		Quantity: 3,
		Price:    decimal.NewFromFloat(0.80),
	}

	suite.mockInvRepo.On("SaveItem", ctx, mock.AnythingOfType("domain.InventoryItem")).Return(errSaveFailed).Once()

	item, err := suite.service.CreateItem(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(item)
	suite.mockInvRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestListItems_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expected := []domain.InventoryItem{{RowID: uuid.NewString(), OwnerID: ownerID, ItemID: "SKU-001"}}

	suite.mockInvRepo.On("FindItemsByOwner", ctx, ownerID).Return(expected, nil).Once()

	items, err := suite.service.ListItems(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Equal(expected, items)
	suite.mockInvRepo.AssertExpectations(suite.T())
}

func TestInventoryServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(InventoryServiceTestSuite))
}
