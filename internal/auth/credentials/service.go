package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

// Service owns the signup and local-login rules on top of a Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type SignUpRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// SignUp validates the request, hashes the password and creates the account.
// The store's unique index decides races: of two concurrent signups with the
// same email exactly one succeeds, the other observes auth.ErrDuplicateEmail.
func (s *Service) SignUp(ctx context.Context, r SignUpRequest) (LocalUser, error) {
	if r.Username == "" || r.Email == "" || r.Password == "" {
		return LocalUser{}, fmt.Errorf("%w: username, email and password are required", auth.ErrValidation)
	}
	if r.Password != r.ConfirmPassword {
		return LocalUser{}, fmt.Errorf("%w: passwords do not match", auth.ErrValidation)
	}

	return s.store.Create(ctx, CreateRequest{
		Username:       r.Username,
		Email:          r.Email,
		PasswordDigest: HashPassword(r.Password),
	})
}

// Authenticate verifies identifier + password. Unknown account and wrong
// password both come back as auth.ErrInvalidCredentials so the response
// cannot be used to enumerate accounts.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (LocalUser, error) {
	if identifier == "" || password == "" {
		return LocalUser{}, fmt.Errorf("%w: identifier and password are required", auth.ErrValidation)
	}

	u, err := s.store.FindByIdentifier(ctx, identifier)
	if errors.Is(err, auth.ErrNoAccount) {
		return LocalUser{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return LocalUser{}, err
	}

	if !VerifyPassword(u.PasswordDigest, password) {
		return LocalUser{}, auth.ErrInvalidCredentials
	}

	return u, nil
}
