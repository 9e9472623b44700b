package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stockroom/internal/domain"
	"stockroom/internal/repository"
	"stockroom/internal/util"
)

type RegisterInput struct {
	Username string `valid:"required,length(3|50)"`
	Email    string `valid:"required,email"`
	Password string `valid:"required,length(6|72)"`
}

type LoginInput struct {
	Username string `valid:"required,length(3|50)"`
	Password string `valid:"required,length(6|72)"`
}

type AuthService struct {
	userStore UserStore
	jwtKey    string
}

func NewAuthService(userStore UserStore, jwtKey string) *AuthService {
	return &AuthService{
		userStore: userStore,
		jwtKey:    jwtKey,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if _, err := govalidator.ValidateStruct(input); err != nil {
		return nil, "", ErrInvalidInput
	}

	hashedPassword, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, "", ErrInternalError
	}

	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := s.userStore.Create(user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", ErrInternalError
	}

	token, err := s.generateJWTToken(user.ID)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	if _, err := govalidator.ValidateStruct(input); err != nil {
		return nil, "", ErrInvalidInput
	}

	user, err := s.userStore.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", ErrInternalError
	}

	if err := util.CheckPassword(user.Password, input.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateJWTToken(user.ID)
	if err != nil {
		return nil, "", ErrInternalError
	}

	return user, token, nil
}

func (s *AuthService) generateJWTToken(id uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"id":  id.String(),
		"exp": time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}
