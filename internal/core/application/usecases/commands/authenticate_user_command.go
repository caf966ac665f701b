package commands

import (
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var ErrAuthenticateUserCommandIsNotConstructed = errors.New(
	"AuthenticateUserCommand must be created via NewAuthenticateUserCommand constructor",
)

// AuthenticateUserCommand exchanges credentials for an access token.
type AuthenticateUserCommand struct { //nolint:recvcheck //using for validation
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserCommand(rawEmail, password string) (AuthenticateUserCommand, error) {
	email, emailErr := kernel.NewEmail(rawEmail)

	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return AuthenticateUserCommand{}, err
	}

	return AuthenticateUserCommand{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c AuthenticateUserCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateUserCommandIsNotConstructed)
}

func (c AuthenticateUserCommand) Email() kernel.Email { return c.email }
func (c AuthenticateUserCommand) Password() string { return c.password }
