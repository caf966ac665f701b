package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"
)

// ErrInvalidCredentials is returned both for an unknown email and for a wrong password.
var ErrInvalidCredentials = errs.NewUnauthorizedError("invalid credentials")

const decoyPassword = "labflow-decoy-password"

// AuthenticateUserCommandHandler verifies credentials against live users.
//
// An unknown email still costs one hash comparison against a decoy hash, so the
// response time does not reveal whether the account exists.
type AuthenticateUserCommandHandler struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	tokens    ports.TokenService
	decoyHash func() (string, error)
	logger    *slog.Logger
}

func NewAuthenticateUserCommandHandler(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger *slog.Logger,
) AuthenticateUserCommandHandler {
	return AuthenticateUserCommandHandler{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		decoyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(decoyPassword)
		}),
		logger: logger.With("component", "authenticate-user"),
	}
}

func (h *AuthenticateUserCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateUserCommand,
) (presenters.AuthResponse, error) {
	if err := cmd.Validate(); err != nil {
		return presenters.AuthResponse{}, err
	}

	u, err := h.users.GetByEmail(ctx, cmd.Email())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return presenters.AuthResponse{}, err
		}
		if decoy, decoyErr := h.decoyHash(); decoyErr == nil {
			_ = h.hasher.Compare(decoy, cmd.Password())
		}
		h.logger.WarnContext(ctx, "login failed")
		return presenters.AuthResponse{}, ErrInvalidCredentials
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		if errors.Is(err, ports.ErrPasswordMismatch) {
			h.logger.WarnContext(ctx, "login failed")
			return presenters.AuthResponse{}, ErrInvalidCredentials
		}
		return presenters.AuthResponse{}, errs.NewInternalErrorWithCause("compare password", err)
	}

	token, err := h.tokens.Issue(u.ID().String(), u.Email().String())
	if err != nil {
		return presenters.AuthResponse{}, errs.NewInternalErrorWithCause("issue token", err)
	}

	h.logger.InfoContext(ctx, "login succeeded", "subject", u.ID().String())
	return presenters.Auth(token, u), nil
}
