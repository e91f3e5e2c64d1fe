package service

import (
	"context"
	"errors"
	"strings"

	"github.com/maclaude/learning-node-js-graphql-api/internal/apperr"
	"github.com/maclaude/learning-node-js-graphql-api/internal/auth"
	dom "github.com/maclaude/learning-node-js-graphql-api/internal/domain"
	"github.com/maclaude/learning-node-js-graphql-api/internal/password"
	"github.com/maclaude/learning-node-js-graphql-api/internal/repo"
	"github.com/maclaude/learning-node-js-graphql-api/internal/validate"
)

const minPasswordLength = 5

// UserService handles registration and login.
type UserService struct {
	users  repo.UserRepo
	hasher password.Hasher
	tokens *auth.TokenService
}

// NewUserService returns a new UserService.
func NewUserService(users repo.UserRepo, hasher password.Hasher, tokens *auth.TokenService) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Register validates the input, rejects duplicate emails and persists a new
// user with a hashed password.
func (s *UserService) Register(ctx context.Context, email, name, plaintext string) (dom.User, error) {
	email = strings.TrimSpace(email)

	var violations []apperr.FieldError
	if !validate.IsEmail(email) {
		violations = append(violations, apperr.FieldError{Message: "E-Mail is invalid."})
	}
	if !validate.MinLength(plaintext, minPasswordLength) {
		violations = append(violations, apperr.FieldError{Message: "Password too short!"})
	}
	if len(violations) > 0 {
		return dom.User{}, apperr.InvalidInput(violations)
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return dom.User{}, apperr.Conflict("User already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return dom.User{}, err
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return dom.User{}, err
	}

	u, err := s.users.Create(ctx, dom.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return dom.User{}, apperr.Conflict("User already exists")
	}
	if err != nil {
		return dom.User{}, err
	}
	return u, nil
}

// Login checks the credentials and issues a token scoped to the user.
func (s *UserService) Login(ctx context.Context, email, plaintext string) (token, userID string, err error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return "", "", apperr.Unauthorized("User not found")
	}
	if err != nil {
		return "", "", err
	}

	ok, err := s.hasher.Verify(plaintext, u.PasswordHash)
	if err != nil || !ok {
		return "", "", apperr.Unauthorized("Password is incorrect")
	}

	token, err = s.tokens.Issue(u.ID.Hex(), u.Email)
	if err != nil {
		return "", "", err
	}
	return token, u.ID.Hex(), nil
}
