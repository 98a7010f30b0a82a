package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return cloneUser(user), nil
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *stubUserRepo) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	result := make([]domain.Customer, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, domain.Customer{
			ID:      user.ID,
			Name:    user.Name,
			Phone:   user.Phone,
			Address: user.Address,
		})
	}
	return result, nil
}

type stubAdminRepo struct {
	admin *domain.AdminAccount
}

func (r *stubAdminRepo) GetByID(_ context.Context, id int64) (*domain.AdminAccount, error) {
	if r.admin != nil && r.admin.ID == id {
		clone := *r.admin
		return &clone, nil
	}
	return nil, pgx.ErrNoRows
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 120,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func newTestAuthService(users *stubUserRepo, admins *stubAdminRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{
		UserRepo:  users,
		AdminRepo: admins,
	})
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubAdminRepo{})

	user, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@x.com", Password: "p1",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected generated id")
	}

	stored, err := repo.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("stored user not retrievable: %v", err)
	}
	if stored.PasswordHash == "p1" {
		t.Fatalf("stored password must never equal plaintext")
	}
	if err := auth.ComparePassword(stored.PasswordHash, "p1"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_Register_DistinctEmailsDistinctIDs(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubAdminRepo{})

	first, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	second, err := svc.Register(context.Background(), RegisterInput{Name: "B", Email: "b@x.com", Password: "p2"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected unique ids, both got %d", first.ID)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubAdminRepo{})

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"}); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Name: "A2", Email: "a@x.com", Password: "p2"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one row after duplicate attempt, got %d", len(repo.users))
	}
}

func TestAuthService_Login_TokenResolvesToRegisteredUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubAdminRepo{})

	registered, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	user, token, _, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned different user: %d vs %d", user.ID, registered.ID)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.SubjectID != registered.ID || claims.Email != "a@x.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.Subject != domain.SubjectTypeShopper {
		t.Fatalf("expected shopper subject, got %s", claims.Subject)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubAdminRepo{})

	if _, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "a@x.com", Password: "p1"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, _, _, wrongPass := svc.Login(context.Background(), "a@x.com", "wrong")
	_, _, _, unknownEmail := svc.Login(context.Background(), "ghost@x.com", "p1")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestAuthService_LoginAdmin(t *testing.T) {
	hash, err := auth.HashPassword("adminpass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	admins := &stubAdminRepo{admin: &domain.AdminAccount{ID: 1, PasswordHash: hash}}
	svc := newTestAuthService(newStubUserRepo(), admins)

	admin, token, _, err := svc.LoginAdmin(context.Background(), 1, "adminpass")
	if err != nil {
		t.Fatalf("LoginAdmin error: %v", err)
	}
	if admin.ID != 1 {
		t.Fatalf("unexpected admin id: %d", admin.ID)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Subject != domain.SubjectTypeAdmin {
		t.Fatalf("expected admin subject, got %s", claims.Subject)
	}

	if _, _, _, err := svc.LoginAdmin(context.Background(), 1, "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.LoginAdmin(context.Background(), 99, "adminpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown admin: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile_NotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), &stubAdminRepo{})

	if _, err := svc.Profile(context.Background(), 404); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
