package dto

import "github.com/yukikurage/employee-management-api/internal/models"

// UserDTO represents user information returned in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	UserName string `json:"userName"`
}

// CredentialsDTO is the register and login request body
type CredentialsDTO struct {
	UserName string `json:"userName" binding:"required,max=255,email"`
	Password string `json:"password" binding:"notblank,max=72"`
}

// ToUserDTO converts a user model to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		UserName: user.Username,
	}
}
