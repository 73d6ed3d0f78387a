package dto

import "github.com/garagehub/autoshop-api/internal/models"

// UserDTO is the public profile shape: never carries the password hash.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}

func NewUserListDTO(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUserDTO(&users[i]))
	}
	return out
}
