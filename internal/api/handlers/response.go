package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/api/services"
)

func ErrUnauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}

func ErrUnauthorizedWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": message})
}

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrConflict(c echo.Context, message string) error {
	if message == "" {
		message = "conflict"
	}
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func SuccessResponse(c echo.Context, message string) error {
	if message == "" {
		message = "ok"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// serviceError translates a service error kind into the matching status code:
// 404 for missing items, 401 for foreign items, 400 for rejected input, 500
// for everything else (store failures included).
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		return ErrNotFound(c, err.Error())
	case errors.Is(err, services.ErrNotOwner):
		return ErrUnauthorizedWithMessage(c, err.Error())
	case errors.Is(err, services.ErrInvalidInput):
		return ErrBadRequest(c, err.Error())
	default:
		return ErrInternalServerError(c)
	}
}
