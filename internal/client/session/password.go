package session

import (
	"errors"
	"strings"
	"unicode"
)

// ErrWeakPassword matches any password-policy failure via errors.Is.
var ErrWeakPassword = errors.New("senha fraca")

// WeakPasswordError lists the policy rules a candidate password missed.
// It is produced locally; no network call is made for a weak password.
type WeakPasswordError struct {
	Faltas []string
}

func (e *WeakPasswordError) Error() string {
	return "senha fraca: " + strings.Join(e.Faltas, "; ")
}

func (e *WeakPasswordError) Is(target error) bool { return target == ErrWeakPassword }

const specialRunes = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the account password policy: minimum 8 characters
// with at least one upper-case letter, one lower-case letter, one digit and
// one special character. Returns a *WeakPasswordError naming every unmet
// rule, or nil.
func ValidatePassword(senha string) error {
	var faltas []string

	if len(senha) < 8 {
		faltas = append(faltas, "mínimo de 8 caracteres")
	}

	var upper, lower, digit, special bool
	for _, r := range senha {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialRunes, r):
			special = true
		}
	}

	if !upper {
		faltas = append(faltas, "pelo menos uma letra maiúscula")
	}
	if !lower {
		faltas = append(faltas, "pelo menos uma letra minúscula")
	}
	if !digit {
		faltas = append(faltas, "pelo menos um número")
	}
	if !special {
		faltas = append(faltas, "pelo menos um caractere especial")
	}

	if len(faltas) > 0 {
		return &WeakPasswordError{Faltas: faltas}
	}
	return nil
}
