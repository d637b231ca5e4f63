package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
)

func newUserEcho(svc *MockUserService, authSvc *MockAuthService) *echo.Echo {
	e := newTestEcho()
	h := NewUserHandler(svc, authSvc)
	e.POST("/usuarios/signup", h.SignUp)
	e.POST("/usuarios/login", h.Login)
	e.GET("/usuarios/", h.ListUsers)
	e.GET("/usuarios/:id", h.GetUser)
	e.PUT("/usuarios/:id", h.UpdateUser)
	e.DELETE("/usuarios/:id", h.DeleteUser)
	return e
}

func TestUserHandler_SignUp(t *testing.T) {
	svc := new(MockUserService)
	svc.On("SignUp", mock.Anything, mock.AnythingOfType("*model.User")).Return(&model.User{
		ID:    1,
		Nome:  "Ana",
		Email: "ana@example.com",
		Senha: "digest",
	}, nil)

	e := newUserEcho(svc, new(MockAuthService))
	body := `{"nome":"Ana","email":"ana@example.com","senha":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	// the password digest must never appear in the response
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "senha")
}

func TestUserHandler_SignUp_DuplicateEmail(t *testing.T) {
	svc := new(MockUserService)
	svc.On("SignUp", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil, apperrors.ErrEmailTaken)

	e := newUserEcho(svc, new(MockAuthService))
	body := `{"email":"ana@example.com","senha":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
}

func TestUserHandler_SignUp_MissingEmail(t *testing.T) {
	e := newUserEcho(new(MockUserService), new(MockAuthService))
	req := httptest.NewRequest(http.MethodPost, "/usuarios/signup", strings.NewReader(`{"senha":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Login_JSON(t *testing.T) {
	authSvc := new(MockAuthService)
	authSvc.On("Login", mock.Anything, "ana@example.com", "password123").
		Return("token-abc", &model.User{ID: 1}, nil)

	e := newUserEcho(new(MockUserService), authSvc)
	body := `{"email":"ana@example.com","password":"password123"}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"token-abc"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

// The OAuth2-style password form uses `username` for the email.
func TestUserHandler_Login_Form(t *testing.T) {
	authSvc := new(MockAuthService)
	authSvc.On("Login", mock.Anything, "ana@example.com", "password123").
		Return("token-abc", &model.User{ID: 1}, nil)

	e := newUserEcho(new(MockUserService), authSvc)
	form := url.Values{"username": {"ana@example.com"}, "password": {"password123"}}
	req := httptest.NewRequest(http.MethodPost, "/usuarios/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	authSvc.AssertExpectations(t)
}

func TestUserHandler_Login_BadCredentials(t *testing.T) {
	authSvc := new(MockAuthService)
	authSvc.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return("", nil, apperrors.ErrInvalidCredentials)

	e := newUserEcho(new(MockUserService), authSvc)
	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/usuarios/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	svc := new(MockUserService)
	svc.On("GetUser", mock.Anything, uint(99)).Return(nil, apperrors.ErrUserNotFound)

	e := newUserEcho(svc, new(MockAuthService))
	req := httptest.NewRequest(http.MethodGet, "/usuarios/99", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	svc := new(MockUserService)
	svc.On("UpdateUser", mock.Anything, uint(7), mock.Anything).
		Return(&model.User{ID: 7, Nome: "Ana", Sobrenome: "Souza"}, nil)

	e := newUserEcho(svc, new(MockAuthService))
	req := httptest.NewRequest(http.MethodPut, "/usuarios/7", strings.NewReader(`{"sobrenome":"Souza"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestUserHandler_DeleteUser(t *testing.T) {
	svc := new(MockUserService)
	svc.On("DeleteUser", mock.Anything, uint(7)).Return(nil)

	e := newUserEcho(svc, new(MockAuthService))
	req := httptest.NewRequest(http.MethodDelete, "/usuarios/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
