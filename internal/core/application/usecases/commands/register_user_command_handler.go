package commands

import (
	"context"
	"log/slog"

	"labflow/internal/core/application/usecases/presenters"
	"labflow/internal/core/domain/model/user"
	"labflow/internal/core/ports"
	"labflow/internal/pkg/errs"
)

// RegisterUserCommandHandler creates a user unless a live user already owns the
// email, then issues an access token for it.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
	logger     *slog.Logger
}

func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger *slog.Logger,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger.With("component", "register-user"),
	}
}

func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (presenters.AuthResponse, error) {
	if err := cmd.Validate(); err != nil {
		return presenters.AuthResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return presenters.AuthResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	exists, err := repo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return presenters.AuthResponse{}, err
	}
	if exists {
		h.logger.WarnContext(ctx, "email already registered")
		return presenters.AuthResponse{}, errs.NewConflictError("email", cmd.Email().String())
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return presenters.AuthResponse{}, errs.NewInternalErrorWithCause("hash password", err)
	}

	u, err := user.NewUser(cmd.UserID(), cmd.Email(), hash)
	if err != nil {
		return presenters.AuthResponse{}, err
	}

	if err = repo.Add(ctx, u); err != nil {
		return presenters.AuthResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return presenters.AuthResponse{}, err
	}

	token, err := h.tokens.Issue(u.ID().String(), u.Email().String())
	if err != nil {
		return presenters.AuthResponse{}, errs.NewInternalErrorWithCause("issue token", err)
	}

	h.logger.InfoContext(ctx, "user registered", "new_user_id", u.ID().String())
	return presenters.Auth(token, u), nil
}
