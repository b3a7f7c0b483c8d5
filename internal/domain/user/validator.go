package user

import (
	"fmt"
	"unicode"
)

const (
	MinPasswordLen = 4
	MaxUsernameLen = 64
)

type Validator interface {
	ValidateRegister(req RegisterRequest) error
	ValidateUsername(username string) error
}

type RegisterValidator struct{}

func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{}
}

// ValidateRegister checks the required registration fields: username,
// password, age and reason. Sex stays optional, as on the original form.
func (v *RegisterValidator) ValidateRegister(req RegisterRequest) error {
	if err := v.ValidateUsername(req.Username); err != nil {
		return err
	}

	if len(req.Password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	if req.Age == "" {
		return fmt.Errorf("age is required")
	}

	valid := false
	for _, reason := range Reasons() {
		if req.Reason == reason {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("reason must be one of %v", Reasons())
	}

	return nil
}

func (v *RegisterValidator) ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username must not be empty")
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters", MaxUsernameLen)
	}

	for _, r := range username {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("username must not contain spaces or control characters")
		}
	}

	return nil
}
