package ports

import (
	"context"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
)

// UserRepository is the credential registry. The registry does not enforce
// email uniqueness; FindByEmail returns the earliest matching record.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionRepository stores the durable identity snapshot written on login
// and signup, deleted on logout, and read back on every gated request.
type SessionRepository interface {
	Save(ctx context.Context, session domain.Session) error
	Find(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
