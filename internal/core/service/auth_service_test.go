package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/ports"
)

// stubUserRepo mimics the Mongo registry: appends blindly, no email
// uniqueness, FindByEmail returns the earliest match.
type stubUserRepo struct {
	users []*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func (r *stubUserRepo) seed(email, password, name, role string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &domain.User{
		ID:           email,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	}
	r.users = append(r.users, user)
	return user
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	clone := *user
	r.users = append(r.users, &clone)
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// memSessionRepo is an in-memory stand-in for the Redis snapshot store.
type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *memSessionRepo) Save(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *memSessionRepo) Find(_ context.Context, id string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &session, nil
}

func (r *memSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memSessionRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func newAuthService(users *stubUserRepo, sessions *memSessionRepo) *AuthService {
	return NewAuthService(users, sessions, "secret", time.Hour, zerolog.Nop())
}

func sessionID(t *testing.T, token string) string {
	t.Helper()
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("token has no sid claim")
	}
	return sid
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	users.seed("admin@lubes.com", "admin123", "Admin User", domain.RoleAdmin)
	sessions := newMemSessionRepo()
	svc := newAuthService(users, sessions)

	result, err := svc.Login(context.Background(), "admin@lubes.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if result.Identity.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", result.Identity.Role)
	}
	if sessions.len() != 1 {
		t.Fatalf("expected 1 session snapshot, got %d", sessions.len())
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	users.seed("admin@lubes.com", "admin123", "Admin User", domain.RoleAdmin)
	svc := newAuthService(users, newMemSessionRepo())

	if _, err := svc.Login(context.Background(), "admin@lubes.com", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newMemSessionRepo())

	if _, err := svc.Login(context.Background(), "ghost@lubes.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SnapshotRoundTrip(t *testing.T) {
	users := newStubUserRepo()
	seeded := users.seed("customer@lubes.com", "customer123", "John Doe", domain.RoleCustomer)
	sessions := newMemSessionRepo()
	svc := newAuthService(users, sessions)

	result, err := svc.Login(context.Background(), "customer@lubes.com", "customer123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Simulated restart: re-read the persisted snapshot directly.
	restored, err := sessions.Find(context.Background(), sessionID(t, result.Token))
	if err != nil {
		t.Fatalf("snapshot read failed: %v", err)
	}
	want := seeded.Identity()
	if restored.Identity != want {
		t.Fatalf("restored identity %+v, want %+v", restored.Identity, want)
	}
}

func TestAuthService_Logout_ClearsSnapshot(t *testing.T) {
	users := newStubUserRepo()
	users.seed("customer@lubes.com", "customer123", "John Doe", domain.RoleCustomer)
	sessions := newMemSessionRepo()
	svc := newAuthService(users, sessions)

	result, err := svc.Login(context.Background(), "customer@lubes.com", "customer123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	sid := sessionID(t, result.Token)

	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Find(context.Background(), sid); err != domain.ErrSessionNotFound {
		t.Fatalf("expected snapshot gone, got %v", err)
	}

	// Idempotent.
	if err := svc.Logout(context.Background(), sid); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	users := newStubUserRepo()
	sessions := newMemSessionRepo()
	svc := newAuthService(users, sessions)

	result, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "new@lubes.com",
		Password: "pass123",
		Name:     "New User",
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if result.Identity.ID == "" {
		t.Fatalf("expected assigned id")
	}

	stored, err := users.FindByEmail(context.Background(), "new@lubes.com")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if sessions.len() != 1 {
		t.Fatalf("expected signup to open a session")
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newMemSessionRepo())

	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "", Password: "p", Name: "n", Role: domain.RoleCustomer}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "x@lubes.com", Password: "p", Name: "n", Role: "root"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmailCreatesIndependentIdentity(t *testing.T) {
	users := newStubUserRepo()
	users.seed("customer@lubes.com", "customer123", "John Doe", domain.RoleCustomer)
	svc := newAuthService(users, newMemSessionRepo())

	result, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "customer@lubes.com",
		Password: "other456",
		Name:     "Second John",
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("duplicate-email signup failed: %v", err)
	}
	if result.Identity.Name != "Second John" {
		t.Fatalf("expected the new record to be the current identity, got %+v", result.Identity)
	}
	if len(users.users) != 2 {
		t.Fatalf("expected 2 independent records, got %d", len(users.users))
	}

	// Login still resolves the earliest record for the shared email.
	first, err := svc.Login(context.Background(), "customer@lubes.com", "customer123")
	if err != nil {
		t.Fatalf("login as original record failed: %v", err)
	}
	if first.Identity.Name != "John Doe" {
		t.Fatalf("expected earliest record to win login, got %+v", first.Identity)
	}
}
