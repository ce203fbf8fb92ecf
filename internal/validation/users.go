// Package validation implements the field-level rules for users, brands and
// cars. Each rule trims and normalizes its input before checking bounds, and
// returns the normalized value or a domain.ValidationError with the
// user-facing message. Rules that depend on configurable ceilings hang off
// the Rules struct; the rest are plain functions.
package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]+$`)
	fullNameRe = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s]+$`)
)

// reservedUsernames cannot be registered regardless of casing.
var reservedUsernames = map[string]bool{
	"admin":     true,
	"root":      true,
	"superuser": true,
	"system":    true,
	"null":      true,
}

// disposableDomains are rejected during email validation.
var disposableDomains = map[string]bool{
	"mailinator.com":    true,
	"yopmail.com":       true,
	"tempmail.com":      true,
	"10minutemail.com":  true,
	"guerrillamail.com": true,
}

const maxEmailLength = 120

// Username validates and normalizes a username: trimmed, 3–20 characters,
// starting with a letter, containing only letters, digits and underscores,
// and not in the reserved set.
func Username(value string) (string, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return "", domain.NewValidationError("username", "O username não pode estar vazio.")
	case len([]rune(value)) < 3:
		return "", domain.NewValidationError("username", "O username deve ter pelo menos 3 caracteres.")
	case len([]rune(value)) > 20:
		return "", domain.NewValidationError("username", "O username deve ter no máximo 20 caracteres.")
	}

	if !usernameRe.MatchString(value) {
		return "", domain.NewValidationError("username",
			"O username deve começar com uma letra e conter apenas letras, números ou underscores.")
	}

	if reservedUsernames[strings.ToLower(value)] {
		return "", domain.NewValidationError("username", "Este username é reservado e não pode ser utilizado.")
	}

	return value, nil
}

// FullName validates and normalizes a full name: trimmed, 3–50 characters,
// letters, spaces and accented letters only.
func FullName(value string) (string, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return "", domain.NewValidationError("full_name", "O nome completo não pode estar vazio.")
	case len([]rune(value)) < 3:
		return "", domain.NewValidationError("full_name", "O nome completo deve ter pelo menos 3 caracteres.")
	case len([]rune(value)) > 50:
		return "", domain.NewValidationError("full_name", "O nome completo deve ter no máximo 50 caracteres.")
	}

	if !fullNameRe.MatchString(value) {
		return "", domain.NewValidationError("full_name", "O nome completo deve conter apenas letras e espaços.")
	}

	return value, nil
}

// Email lowercases and trims an email address, rejects disposable domains and
// overlong addresses, and defers the format check to net/mail.
func Email(value string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(value))

	if email == "" {
		return "", domain.NewValidationError("email", "O email não pode estar vazio.")
	}

	at := strings.LastIndex(email, "@")
	if at >= 0 && disposableDomains[email[at+1:]] {
		return "", domain.NewValidationError("email", "Emails de domínio descartável não são permitidos.")
	}

	if len(email) > maxEmailLength {
		return "", domain.NewValidationError("email", "O email deve ter no máximo 120 caracteres.")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return "", domain.NewValidationError("email", "Formato de email inválido.")
	}

	return email, nil
}

// Password validates a password: trimmed, 6–15 characters, containing at
// least one digit and one letter. The returned value is what must be hashed.
func Password(value string) (string, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return "", domain.NewValidationError("password", "A senha não pode estar vazia.")
	case len(value) < 6:
		return "", domain.NewValidationError("password", "A senha deve ter pelo menos 6 caracteres.")
	case len(value) > 15:
		return "", domain.NewValidationError("password", "A senha deve ter no máximo 15 caracteres.")
	}

	var hasDigit, hasLetter bool
	for _, r := range value {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLetter(r):
			hasLetter = true
		}
	}

	if !hasDigit {
		return "", domain.NewValidationError("password", "A senha deve conter pelo menos um número.")
	}
	if !hasLetter {
		return "", domain.NewValidationError("password", "A senha deve conter pelo menos uma letra.")
	}

	return value, nil
}
