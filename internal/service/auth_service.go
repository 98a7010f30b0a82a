package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/events"
	"github.com/spec-kit/storefront-service/internal/repository"
)

// RegisterInput describes a shopper registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Address  *string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	admins     repository.AdminRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	AdminRepo  repository.AdminRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		admins:     deps.AdminRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new shopper account. Duplicate emails are rejected
// by the store's unique constraint, so concurrent registrations cannot
// both slip past a pre-check.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventUserRegistered,
		Actor: shopperActor(user.ID),
		Payload: events.UserRegisteredPayload{
			UserID: user.ID,
			Name:   user.Name,
		},
	})
	return user, nil
}

// Login authenticates a shopper. Unknown email and wrong password both
// return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateShopperToken(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// LoginAdmin authenticates the admin principal by id. The stored
// credential is bcrypt-hashed like any shopper password.
func (s *AuthService) LoginAdmin(ctx context.Context, id int64, password string) (*domain.AdminAccount, string, time.Time, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, domain.ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.GenerateAdminToken(admin.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		Type:  events.EventAdminLogin,
		Actor: adminActor(admin.ID),
	})
	return admin, token, exp, nil
}

// Profile loads the shopper behind a verified token.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func shopperActor(userID int64) events.Actor {
	return events.Actor{
		Type:   domain.SubjectTypeShopper,
		UserID: &userID,
	}
}

func adminActor(adminID int64) events.Actor {
	return events.Actor{
		Type:    domain.SubjectTypeAdmin,
		AdminID: &adminID,
	}
}
