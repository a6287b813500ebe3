package services

import (
	"context"
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
	"github.com/biztrackr/biz_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for user profile data
type UserReaderSvc interface {
	// GetUserByID retrieves a user profile by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user profile by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user profile data
type UserWriterSvc interface {
	// RegisterUser creates a new user profile with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// FindOrCreateOAuthUser resolves a profile for an externally authenticated
	// identity, creating one on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, email, name string) (*domain.User, error)

	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
