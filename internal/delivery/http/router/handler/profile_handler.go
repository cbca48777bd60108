package handler

import (
	"net/http"

	"gsale/internal/delivery/http/middleware"
	"gsale/internal/delivery/http/response"
	"gsale/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandler handles the authenticated user's own account endpoints.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

// ProfileHandlerParams defines the dependencies for the profile handler.
type ProfileHandlerParams struct {
	fx.In

	ProfileUsecase usecase.ProfileUsecase
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUsecase: params.ProfileUsecase}
}

// GetProfile returns the authenticated user's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	user, err := h.profileUsecase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

type updateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=3,max=100"`
	Phone *string `json:"phone" validate:"omitempty"`
}

// UpdateProfile changes the authenticated user's name or phone.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.profileUsecase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// ChangePassword replaces the authenticated user's password.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.profileUsecase.ChangePassword(c.Request().Context(), userID, usecase.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "password changed"})
}

// BecomeSeller promotes the authenticated buyer to a seller account.
func (h *ProfileHandler) BecomeSeller(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	user, err := h.profileUsecase.BecomeSeller(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
