package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"stockroom/internal/api/dto"
	"stockroom/internal/api/services"
	"stockroom/internal/repository"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *sqlx.DB, jwtKey string) *AuthHandler {
	userRepo := repository.NewUserRepository(db)

	return &AuthHandler{
		authService: services.NewAuthService(userRepo, jwtKey),
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"storekeeper"`
	Password string `json:"password" validate:"required" example:"password123"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  *dto.User `json:"user"`
}

// Register godoc
// @Summary Register
// @Description Create an account and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "New account"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	user, token, err := h.authService.Register(c.Request().Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			return ErrConflict(c, "user already exists")
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "invalid input")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Login godoc
// @Summary Login
// @Description Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	if err := c.Validate(&req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return ErrUnauthorizedWithMessage(c, "invalid credentials")
		case errors.Is(err, services.ErrInvalidInput):
			return ErrBadRequest(c, "invalid input")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}
