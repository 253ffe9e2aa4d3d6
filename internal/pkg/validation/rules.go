package validation

import (
	"fmt"
	"strings"
)

// Field length limits shared by the services.
var (
	NameMinLength     = 2
	NameMaxLength     = 100
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 6
)

// RequireField checks that a required field is present after trimming.
func RequireField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

// CheckName validates a display name against the shared length rules.
func CheckName(value string) error {
	if err := RequireField("name", value); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < NameMinLength || len(trimmed) > NameMaxLength {
		return fmt.Errorf("name must be between %d and %d characters", NameMinLength, NameMaxLength)
	}
	return nil
}

// CheckUsername validates a login username.
func CheckUsername(value string) error {
	if err := RequireField("username", value); err != nil {
		return err
	}
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < UsernameMinLength || len(trimmed) > UsernameMaxLength {
		return fmt.Errorf("username must be between %d and %d characters", UsernameMinLength, UsernameMaxLength)
	}
	if strings.ContainsAny(trimmed, " \t") {
		return fmt.Errorf("username must not contain whitespace")
	}
	return nil
}

// CheckPassword validates a new password.
func CheckPassword(value string) error {
	if value == "" {
		return fmt.Errorf("password is required")
	}
	if len(value) < PasswordMinLength {
		return fmt.Errorf("password must be at least %d characters", PasswordMinLength)
	}
	return nil
}
