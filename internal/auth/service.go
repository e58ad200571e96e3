package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowmart/cosmetics-backend/internal/operators"
	pkgauth "github.com/glowmart/cosmetics-backend/pkg/auth"
	"github.com/glowmart/cosmetics-backend/pkg/config"
	"github.com/glowmart/cosmetics-backend/pkg/db/models"
	pkgerrors "github.com/glowmart/cosmetics-backend/pkg/errors"
	"github.com/glowmart/cosmetics-backend/pkg/logger"
	"github.com/glowmart/cosmetics-backend/pkg/security"
)

// bootstrapUsername is the only operator allowed to provision new operators.
const bootstrapUsername = "admin"

const minPasswordLength = 12

// OperatorStore is the persistence surface the service needs.
type OperatorStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Operator, error)
	FindByID(ctx context.Context, id uint64) (*models.Operator, error)
	Create(ctx context.Context, operator *models.Operator) error
	UpdatePasswordHash(ctx context.Context, id uint64, hash string, modifier string) error
}

// Service implements session issuance and operator management.
type Service struct {
	store OperatorStore
	cfg   *config.Config
	logg  *logger.Logger
	now   func() time.Time
}

func NewService(store OperatorStore, cfg *config.Config, logg *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("operator store is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Service{
		store: store,
		cfg:   cfg,
		logg:  logg,
		now:   time.Now,
	}, nil
}

// Login checks credentials and mints a session token. Unknown usernames and
// wrong passwords both come back as 401, with distinct messages.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	operator, err := s.store.FindByUsername(ctx, input.Username)
	if errors.Is(err, operators.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid username")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading operator")
	}

	ok, err := security.VerifyPassword(input.Password, operator.PasswordHash)
	if err != nil && !errors.Is(err, security.ErrInvalidHash) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := pkgauth.Mint(s.cfg.JWT, s.now(), operator.ID, operator.Username)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting session token")
	}

	s.logg.Info(s.logg.WithOperator(ctx, operator.Username), "operator logged in")

	return &LoginResult{
		Token:    token,
		Username: operator.Username,
		UserID:   operator.ID,
	}, nil
}

// CurrentOperator resolves the token identity against the operator table.
func (s *Service) CurrentOperator(ctx context.Context, identity pkgauth.Identity) (*OperatorResult, error) {
	operator, err := s.store.FindByID(ctx, identity.ID)
	if errors.Is(err, operators.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "operator no longer exists")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading operator")
	}
	return &OperatorResult{ID: operator.ID, Username: operator.Username}, nil
}

// CreateOperator provisions a new operator. Only the bootstrap operator may
// do this; everyone else gets a 403 regardless of the payload.
func (s *Service) CreateOperator(ctx context.Context, actor pkgauth.Identity, input CreateOperatorInput) (*OperatorResult, error) {
	if actor.Username != bootstrapUsername {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "only the admin operator can create operators")
	}
	if len(input.Password) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	_, err := s.store.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
	}
	if !errors.Is(err, operators.ErrNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "checking username availability")
	}

	hash, err := security.HashPassword(input.Password, s.cfg.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	operator := &models.Operator{
		Username:     input.Username,
		PasswordHash: hash,
		Creator:      actor.Username,
	}
	if err := s.store.Create(ctx, operator); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating operator")
	}

	s.logg.Info(s.logg.WithFields(ctx, map[string]any{
		"operator": actor.Username,
		"created":  operator.Username,
	}), "operator created")

	return &OperatorResult{ID: operator.ID, Username: operator.Username}, nil
}

// ChangePassword rotates the caller's password after re-verifying the old one
// and mints a replacement token so the client does not have to log in again.
func (s *Service) ChangePassword(ctx context.Context, actor pkgauth.Identity, input ChangePasswordInput) (*ChangePasswordResult, error) {
	if len(input.NewPassword) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("new password must be at least %d characters", minPasswordLength))
	}

	operator, err := s.store.FindByID(ctx, actor.ID)
	if errors.Is(err, operators.ErrNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "operator no longer exists")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading operator")
	}

	ok, err := security.VerifyPassword(input.OldPassword, operator.PasswordHash)
	if err != nil && !errors.Is(err, security.ErrInvalidHash) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	hash, err := security.HashPassword(input.NewPassword, s.cfg.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	if err := s.store.UpdatePasswordHash(ctx, operator.ID, hash, operator.Username); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "storing password")
	}

	token, err := pkgauth.Mint(s.cfg.JWT, s.now(), operator.ID, operator.Username)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting session token")
	}

	s.logg.Info(s.logg.WithOperator(ctx, operator.Username), "operator password changed")

	return &ChangePasswordResult{Token: token}, nil
}
