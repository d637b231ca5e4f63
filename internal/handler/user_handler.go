package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/service"
)

// UserHandler bundles the user HTTP handlers, including signup and login.
type UserHandler struct {
	svc  service.UserService
	auth service.AuthService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService, auth service.AuthService) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

// SignUpRequest represents a signup request body.
type SignUpRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email" validate:"required,email"`
	Senha     string `json:"senha" validate:"required"`
	EhAdmin   bool   `json:"eh_admin"`
}

// UpdateUserRequest represents a partial user update; absent fields keep
// their stored value.
type UpdateUserRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email" validate:"omitempty,email"`
	Senha     string `json:"senha"`
	EhAdmin   bool   `json:"eh_admin"`
}

// LoginRequest accepts JSON or an OAuth2-style password form; `username` is
// an alias for `email`, matching the original login form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is the login success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// SignUp godoc
// @Summary Register a new user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "User payload"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 406 {object} errors.ErrorResponse
// @Router /usuarios/signup [post]
func (h *UserHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := &model.User{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Senha:     req.Senha,
		EhAdmin:   req.EhAdmin,
	}
	created, err := h.svc.SignUp(c.Request().Context(), user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// ListUsers godoc
// @Summary List all users
// @Tags usuarios
// @Produce json
// @Success 200 {array} model.User
// @Router /usuarios/ [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id with owned articles
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Partially update a user
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 202 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), id, service.UserPatch{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Senha:     req.Senha,
		EhAdmin:   req.EhAdmin,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusAccepted, user)
}

// DeleteUser godoc
// @Summary Delete a user and all owned articles
// @Tags usuarios
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Login godoc
// @Summary Authenticate and receive a bearer token
// @Tags usuarios
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /usuarios/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}
	if email == "" || req.Password == "" {
		return httpError(apperrors.ErrInvalidCredentials)
	}

	token, _, err := h.auth.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Logado godoc
// @Summary Get the authenticated user
// @Tags usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /usuarios/logado [get]
func (h *UserHandler) Logado(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return httpError(apperrors.ErrUnauthenticated)
	}
	return c.JSON(http.StatusOK, user)
}
