package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	portsrepo "github.com/biztrackr/biz_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
	"github.com/google/uuid"
)

type transactionService struct {
	txnRepo    portsrepo.TransactionRepositoryFacade
	userReader portssvc.UserReaderSvc
	feed       *Changefeed
}

// NewTransactionService creates the transaction log service.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, userReader portssvc.UserReaderSvc, feed *Changefeed) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, userReader: userReader, feed: feed}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	user, err := s.userReader.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner profile: %w", err)
	}

	// The allowed catalog follows the owner's business sector. An
	// unrecognized sector has an empty catalog, so every type is rejected.
	allowed := domain.TransactionTypesForSector(user.BusinessSector)
	if !slices.Contains(allowed, req.TransactionType) {
		return nil, fmt.Errorf("transaction type %q not offered for sector %q: %w",
			req.TransactionType, user.BusinessSector, apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         ownerID,
		BusinessSector:  user.BusinessSector,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		CreatedAt:       time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.feed.Publish(CollectionTransactions, ownerID)
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (s *transactionService) ListTransactionTypes(ctx context.Context, ownerID string) ([]string, error) {
	user, err := s.userReader.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owner profile: %w", err)
	}
	return domain.TransactionTypesForSector(user.BusinessSector), nil
}

func (s *transactionService) WatchTransactions(ctx context.Context, ownerID string) (<-chan []domain.Transaction, error) {
	return watchCollection(ctx, s.feed, CollectionTransactions, ownerID, s.txnRepo.FindTransactionsByOwner)
}
