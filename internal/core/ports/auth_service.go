package ports

import (
	"context"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

type SignupInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// AuthResult is the outcome of a successful login or signup: a bearer token
// whose session snapshot has already been persisted, plus the identity.
type AuthResult struct {
	Token    string
	Identity domain.Identity
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
}
