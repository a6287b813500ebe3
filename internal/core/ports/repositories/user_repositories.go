package repositories

import (
	"context"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
)

// UserRepositoryFacade defines the persistence operations for user profiles.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}
