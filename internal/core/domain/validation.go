package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// ValidationCode is a symbolic identifier for a single field-rule
// violation. Codes are stable API surface; transports translate them into
// user-facing messages.
type ValidationCode string

const (
	CodeNameIsEmpty                    ValidationCode = "NameIsEmpty"
	CodeNameContainsScript             ValidationCode = "NameContainsScript"
	CodeDescriptionIsEmpty             ValidationCode = "DescriptionIsEmpty"
	CodeDescriptionInvalidCharacters   ValidationCode = "DescriptionInvalidCharacters"
	CodeAuthorIsEmpty                  ValidationCode = "AuthorIsEmpty"
	CodeAuthorInvalidCharacters        ValidationCode = "AuthorInvalidCharacters"
	CodeYearIsEmpty                    ValidationCode = "YearIsEmpty"
	CodeInvalidYear                    ValidationCode = "InvalidYear"
	CodeEmailIsEmpty                   ValidationCode = "EmailIsEmpty"
	CodeWrongEmailFormat               ValidationCode = "WrongEmailFormat"
	CodePasswordIsEmpty                ValidationCode = "PasswordIsEmpty"
	CodePasswordDoesntMeetRequirements ValidationCode = "PasswordDoesntMeetRequirements"
	CodeEmailDuplicated                ValidationCode = "EmailDuplicated"
	CodeUsernameDuplicated             ValidationCode = "UsernameDuplicated"
	CodeEmailOrPasswordIncorrect       ValidationCode = "EmailOrPasswordIncorrect"
)

// ValidationResult is the structured outcome of a single field-rule check.
// It is never both valid and carrying errors.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationCode
}

func ValidationSuccess() ValidationResult {
	return ValidationResult{Valid: true}
}

func ValidationFailure(codes ...ValidationCode) ValidationResult {
	return ValidationResult{Valid: false, Errors: codes}
}

var (
	// Names may carry the full range of title punctuation but never angle
	// brackets, which blocks any HTML tag (<script>, <img>, <iframe>, ...).
	nameRe = regexp.MustCompile(`^[^<>]+$`)

	// Descriptions allow letters, digits, whitespace, commas, semicolons,
	// hyphens and periods. The allow-list itself excludes angle brackets,
	// so no tag pattern can slip through.
	descriptionRe = regexp.MustCompile(`^[a-zA-Z0-9\s,;.-]+$`)

	// Authors use the same allow-list without digits.
	authorRe = regexp.MustCompile(`^[a-zA-Z\s,;.-]+$`)

	// Single @, with at least one dot in the domain part.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateName checks a resource name. In update mode a blank value means
// "no change requested" and passes trivially; in create mode it is an
// error. Presence is always checked before format.
func ValidateName(name string, isUpdate bool) ValidationResult {
	if isBlank(name) {
		if isUpdate {
			return ValidationSuccess()
		}
		return ValidationFailure(CodeNameIsEmpty)
	}
	if !nameRe.MatchString(name) {
		return ValidationFailure(CodeNameContainsScript)
	}
	return ValidationSuccess()
}

// ValidateDescription checks a resource description against the
// character allow-list.
func ValidateDescription(description string, isUpdate bool) ValidationResult {
	if isBlank(description) {
		if isUpdate {
			return ValidationSuccess()
		}
		return ValidationFailure(CodeDescriptionIsEmpty)
	}
	if !descriptionRe.MatchString(description) {
		return ValidationFailure(CodeDescriptionInvalidCharacters)
	}
	return ValidationSuccess()
}

// ValidateAuthor checks a resource author against the letters-only
// allow-list.
func ValidateAuthor(author string, isUpdate bool) ValidationResult {
	if isBlank(author) {
		if isUpdate {
			return ValidationSuccess()
		}
		return ValidationFailure(CodeAuthorIsEmpty)
	}
	if !authorRe.MatchString(author) {
		return ValidationFailure(CodeAuthorInvalidCharacters)
	}
	return ValidationSuccess()
}

// ValidateYear checks a publication year. A nil pointer means the field
// was absent. Years in the future relative to the current UTC calendar
// year are rejected.
func ValidateYear(year *int, isUpdate bool) ValidationResult {
	if year == nil {
		if isUpdate {
			return ValidationSuccess()
		}
		return ValidationFailure(CodeYearIsEmpty)
	}
	if *year > time.Now().UTC().Year() {
		return ValidationFailure(CodeInvalidYear)
	}
	return ValidationSuccess()
}

// ValidateEmail checks an account email address.
func ValidateEmail(email string, isUpdate bool) ValidationResult {
	if isBlank(email) {
		if isUpdate {
			return ValidationSuccess()
		}
		return ValidationFailure(CodeEmailIsEmpty)
	}
	if !emailRe.MatchString(email) {
		return ValidationFailure(CodeWrongEmailFormat)
	}
	return ValidationSuccess()
}

// ValidatePassword requires at least 12 characters with one lowercase,
// one uppercase, one digit and one non-alphanumeric symbol.
func ValidatePassword(password string, isUpdate bool) ValidationResult {
	if isBlank(password) {
		if isUpdate {
			return ValidationSuccess()
		}
		return ValidationFailure(CodePasswordIsEmpty)
	}
	if !passwordMeetsRequirements(password) {
		return ValidationFailure(CodePasswordDoesntMeetRequirements)
	}
	return ValidationSuccess()
}

func passwordMeetsRequirements(password string) bool {
	if utf8.RuneCountInString(password) < 12 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
