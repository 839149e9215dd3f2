package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spitlabs/lostfound-service/internal/auth"
	"github.com/spitlabs/lostfound-service/internal/config"
	"github.com/spitlabs/lostfound-service/internal/domain"
	"github.com/spitlabs/lostfound-service/internal/repository"
	apperrors "github.com/spitlabs/lostfound-service/pkg/util"
)

// AuthService coordinates registration, login and logout flows.
type AuthService struct {
	users      repository.UserRepository
	sessions   auth.SessionStore
	tokenMgr   *auth.TokenManager
	bcryptCost int
	authCfg    config.AuthConfig
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	SessionStore auth.SessionStore
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name       string
	UCID       string
	Email      string
	Password   string
	Phone      string
	Department string
	Year       string
	Semester   string
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		sessions:   deps.SessionStore,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		authCfg:    cfg.Auth,
	}
}

// Register creates a new account. The role is assigned from the admin email
// allow-list at creation time and never changed afterwards.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.UCID == "" || input.Email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("name, ucid, email, password required", nil)
	}

	if err := s.ensureIdentityFree(ctx, input.Email, input.UCID); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleStudent
	if s.authCfg.IsAdminEmail(input.Email) {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		UCID:         strings.TrimSpace(input.UCID),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         role,
		Phone:        input.Phone,
		Department:   input.Department,
		Year:         input.Year,
		Semester:     input.Semester,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can still hit the unique constraint.
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// Login authenticates a user and issues a session token. Unknown email and
// wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, "", time.Time{}, err
	}

	token, sessionID, expiresAt, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if err := s.sessions.Save(ctx, sessionID, user.ID, s.tokenMgr.TTL()); err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, expiresAt, nil
}

// Logout revokes the session server-side; the token is dead afterwards.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) ensureIdentityFree(ctx context.Context, email, ucid string) error {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return apperrors.NewDuplicateIdentity()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if _, err := s.users.GetByUCID(ctx, ucid); err == nil {
		return apperrors.NewDuplicateIdentity()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return nil
}
