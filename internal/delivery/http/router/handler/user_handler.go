package handler

import (
	"net/http"

	"gsale/internal/delivery/http/middleware"
	"gsale/internal/delivery/http/response"
	"gsale/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandler handles account registration and session endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// UserHandlerParams defines the dependencies for the user handler.
type UserHandlerParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
}

// NewUserHandler creates a new user handler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUsecase: params.UserUsecase}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	CPF      string `json:"cpf" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Register creates a new buyer account.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUsecase.RegisterUser(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(out.User))
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user,omitempty"`
}

// Login authenticates a user and issues a token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUsecase.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		User:         toUserResponse(out.User),
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Refresh rotates a refresh token into a new token pair.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	out, err := h.userUsecase.RefreshToken(c.Request().Context(), usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
	})
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Logout revokes the session behind the presented refresh token.
func (h *UserHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.userUsecase.Logout(c.Request().Context(), usecase.LogoutInput{
		RefreshToken: req.RefreshToken,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "logged out"})
}

// LogoutAll revokes every session of the authenticated user.
func (h *UserHandler) LogoutAll(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	if err := h.userUsecase.LogoutAll(c.Request().Context(), userID.String()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "all sessions revoked"})
}
