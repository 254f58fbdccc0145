package converter

import (
	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/domain/entity"
)

// UserToResponse converts a User entity to its public UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		UserType: string(user.UserType),
	}

	// Sessions restored from Redis carry no creation time
	if !user.CreatedAt.IsZero() {
		createdAt := user.CreatedAt
		response.CreatedAt = &createdAt
	}

	return response
}
