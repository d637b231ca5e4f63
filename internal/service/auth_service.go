package service

import (
	"context"
	"fmt"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/repository"
)

// AuthService authenticates credentials and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, email, senha string) (token string, user *model.User, err error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

// Login looks up the user by email and verifies the password. Unknown email
// and wrong password return the same ErrInvalidCredentials so the response
// cannot be used to enumerate registered emails.
func (s *authService) Login(ctx context.Context, email, senha string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(senha, user.Senha) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue access token: %w", err)
	}

	return token, user, nil
}
