package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/user"
	"labflow/internal/pkg/errs"
	"labflow/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates an account and signs the caller in.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.ID
	email    kernel.Email
	password string

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(userID kernel.ID, rawEmail, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{guard: guard.NewConstructorGuard()}

	email, emailErr := kernel.NewEmail(rawEmail)
	if err := errors.Join(userID.Validate(), emailErr, validatePassword(password)); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.userID = userID
	cmd.email = email
	cmd.password = password
	return cmd, nil
}

func validatePassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if n := utf8.RuneCountInString(password); n < user.MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters, got %d", user.MinPasswordLength, n))
	}
	return nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.ID { return c.userID }
func (c RegisterUserCommand) Email() kernel.Email { return c.email }
func (c RegisterUserCommand) Password() string { return c.password }
