package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// AuthService owns the current-identity lifecycle: credential matching on
// login, registry append on signup, snapshot persistence, snapshot deletion
// on logout. Credentials are bcrypt-hashed; the raw password is compared
// against the hash only, never stored.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Signup appends a new credential record and immediately opens a session
// for it. A pre-existing record with the same email does not block the
// signup; the registry accepts duplicate emails.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return s.openSession(ctx, created)
}

// Logout deletes the session snapshot. Deleting an absent snapshot is not
// an error, so repeated logouts are harmless.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	session := domain.Session{
		ID:       uuid.NewString(),
		Identity: user.Identity(),
		IssuedAt: time.Now().UTC(),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	token, err := s.generateToken(session)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("session_id", session.ID).Msg("session opened")
	return &ports.AuthResult{Token: token, Identity: session.Identity}, nil
}

func (s *AuthService) generateToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"sub":   session.Identity.ID,
		"email": session.Identity.Email,
		"name":  session.Identity.Name,
		"role":  session.Identity.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
