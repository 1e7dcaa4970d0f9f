package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/lingobeats/song-catalogue/pkg/auth"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	in := Input{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		BirthDate:  req.BirthDate,
		LanguageID: req.LanguageID,
	}
	validationErrors, err := h.service.ValidateUser(in, true)
	if err != nil {
		return internalError(c, err)
	}
	if len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest, map[string][]string{"errors": validationErrors})
	}

	if err := h.service.Register(req); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is already registered."})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required."})
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		case errors.Is(err, ErrInvalidPassword):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid password."})
		default:
			return internalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Login successful!", "token": token})
}

// ListUsers is admin-only; routing applies the auth gates.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id."})
	}

	claims := auth.ClaimsFrom(c)
	if claims == nil || claims.ID != id {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: Access denied."})
	}

	detail, err := h.service.GetUser(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id."})
	}

	claims := auth.ClaimsFrom(c)
	if claims == nil || claims.ID != id {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: Access denied."})
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body."})
	}

	in := Input{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		BirthDate:  req.BirthDate,
		LanguageID: req.LanguageID,
	}
	validationErrors, err := h.service.ValidateUser(in, false)
	if err != nil {
		return internalError(c, err)
	}
	if len(validationErrors) > 0 {
		return c.JSON(http.StatusBadRequest, map[string][]string{"errors": validationErrors})
	}

	if err := h.service.UpdateUser(id, req); err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is already registered to another account."})
		case errors.Is(err, ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		default:
			return internalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "User updated successfully!"})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user id."})
	}

	claims := auth.ClaimsFrom(c)
	if claims == nil || claims.ID != id {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Forbidden: Access denied."})
	}

	if err := h.service.DeleteUser(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully!"})
}

func (h *Handler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is required."})
	}

	if err := h.service.ForgotPassword(req.Email); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset email sent."})
}

func (h *Handler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Token is required."})
	}

	if !validPassword(req.Password) {
		return c.JSON(http.StatusBadRequest, map[string][]string{"errors": {msgPassword}})
	}

	if err := h.service.ResetPassword(req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized: Invalid token."})
		case errors.Is(err, ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successfully!"})
}

func internalError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
