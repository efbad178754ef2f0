package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"givebase.app/crm/core/config"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/store"
)

var (
	ErrInvalidCode = errors.New("invalid authorization code")
	ErrNotStaff    = errors.New("user is not a staff member of this organization")
)

// IdentityProvider is the subset of the WorkOS user management client used for staff sign-in.
type IdentityProvider interface {
	GetAuthorizationURL(opts usermanagement.GetAuthorizationURLOpts) (*url.URL, error)
	AuthenticateWithCode(ctx context.Context, opts usermanagement.AuthenticateWithCodeOpts) (usermanagement.AuthenticateResponse, error)
}

// TokenIssuer signs staff session tokens.
type TokenIssuer interface {
	Issue(staff *model.StaffMember) (string, time.Time, error)
}

type AuthResult struct {
	Staff     *model.StaffMember
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	// HandleCallback exchanges a WorkOS code and signs a session for the matching
	// staff member of orgID.
	HandleCallback(ctx context.Context, orgID int64, code string) (*AuthResult, error)
}

type authService struct {
	identity   IdentityProvider
	staffStore store.StaffStore
	tokens     TokenIssuer
	cfg        config.WorkOSConfig
}

func NewAuthService(
	identity IdentityProvider,
	staffStore store.StaffStore,
	tokens TokenIssuer,
	cfg config.WorkOSConfig,
) AuthService {
	return &authService{
		identity:   identity,
		staffStore: staffStore,
		tokens:     tokens,
		cfg:        cfg,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	u, err := s.identity.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    s.cfg.ClientID,
		RedirectURI: s.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return u.String(), nil
}

func (s *authService) HandleCallback(ctx context.Context, orgID int64, code string) (*AuthResult, error) {
	authResponse, err := s.identity.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: s.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrInvalidCode
	}

	workosUser := authResponse.User
	email := strings.ToLower(strings.TrimSpace(workosUser.Email))

	staff, err := s.staffStore.GetByOrgAndEmail(ctx, orgID, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "sign-in by non-staff user", "organization_id", orgID, "email", email)
			return nil, ErrNotStaff
		}
		return nil, fmt.Errorf("getting staff member: %w", err)
	}

	if staff.WorkOSUserID == nil || *staff.WorkOSUserID != workosUser.ID {
		if err := s.staffStore.LinkWorkOSUser(ctx, staff.ID, workosUser.ID); err != nil {
			return nil, fmt.Errorf("linking workos user: %w", err)
		}
		staff.WorkOSUserID = &workosUser.ID
	}

	token, expiresAt, err := s.tokens.Issue(staff)
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	slog.InfoContext(ctx, "staff authenticated",
		"organization_id", orgID,
		"staff_id", staff.ID,
		"role", staff.Role)

	return &AuthResult{Staff: staff, Token: token, ExpiresAt: expiresAt}, nil
}
