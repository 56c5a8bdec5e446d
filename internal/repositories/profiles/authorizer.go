package profiles

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
)

// Authorizer answers role questions for the orchestrators. It is the only
// place role semantics live: forbidden overrides admin unconditionally.
type Authorizer struct {
	repo        Repository
	adminSecret string
}

// AuthorizerConfig contains configuration for the Authorizer.
type AuthorizerConfig struct {
	Repository Repository
	// AdminSecret is the bootstrap secret that GrantAdmin checks
	// caller-supplied secrets against. Empty disables self-service
	// grants entirely.
	AdminSecret string
}

// Validate validates the AuthorizerConfig.
func (cfg *AuthorizerConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return errors.InvalidArgument("repository cannot be nil")
	}
	return nil
}

// NewAuthorizer creates a new Authorizer.
func NewAuthorizer(cfg *AuthorizerConfig) (*Authorizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Authorizer{
		repo:        cfg.Repository,
		adminSecret: cfg.AdminSecret,
	}, nil
}

// IsAdmin reports whether the user currently holds the admin role. A
// forbidden role always answers false, regardless of any earlier grant.
func (a *Authorizer) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, errors.InvalidArgument("user ID cannot be empty")
	}

	out, err := a.repo.Get(ctx, GetInput{UserID: userID})
	if err != nil {
		return false, err
	}
	if !out.Found {
		return false, nil
	}

	switch out.Profile.Role {
	case entities.RoleForbidden:
		return false, nil
	case entities.RoleAdmin:
		return true, nil
	default:
		return false, nil
	}
}

// GrantAdmin grants the admin role when the supplied secret matches the
// configured bootstrap secret. A forbidden user can never be granted
// admin this way.
func (a *Authorizer) GrantAdmin(ctx context.Context, userID, secret string) (*entities.Profile, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if a.adminSecret == "" {
		return nil, errors.FailedPrecondition("admin grants are not configured")
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(a.adminSecret)) != 1 {
		slog.WarnContext(ctx, "admin grant rejected", "user_id", userID)
		return nil, errors.Unauthenticated("invalid admin secret")
	}

	existing, err := a.repo.Get(ctx, GetInput{UserID: userID})
	if err != nil {
		return nil, err
	}
	if existing.Found && existing.Profile.Role == entities.RoleForbidden {
		return nil, errors.PermissionDenied("user is forbidden")
	}

	out, err := a.repo.SetRole(ctx, SetRoleInput{UserID: userID, Role: entities.RoleAdmin})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "granted admin role", "user_id", userID)
	return out.Profile, nil
}
