package dto

import (
	"time"

	"stockroom/internal/domain"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func UserFromDomain(user *domain.User) *User {
	if user == nil {
		return nil
	}

	return &User{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
