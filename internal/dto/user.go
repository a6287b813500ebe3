package dto

import (
	"time"

	"github.com/biztrackr/biz_tracker_app/internal/core/domain"
)

// UserResponse is the public shape of a user profile.
type UserResponse struct {
	UserID         string    `json:"userID"`
	Username       string    `json:"username"`
	Name           string    `json:"name"`
	BusinessSector string    `json:"businessSector"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Name:           u.Name,
		BusinessSector: string(u.BusinessSector),
		CreatedAt:      u.CreatedAt,
	}
}
