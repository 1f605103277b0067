// Package contact implements the portfolio contact form: validation,
// delivery through EmailJS and the status shown back on the page.
package contact

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Zachkp/portfolio-widgets/internal/apperr"
)

const (
	MsgMissingFields = "Please fill in all required fields"
	MsgInvalidEmail  = "Please enter a valid email address"
)

// notSpaceOrAt matches one character that is neither "@" nor whitespace as
// browsers define it, which also covers \v, Zs spaces, U+2028/9 and U+FEFF.
const notSpaceOrAt = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// isFormSpace reports whether r is trimmed from form input by the browser.
// Unlike unicode.IsSpace it includes U+FEFF and excludes U+0085.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trimFormSpace(s string) string {
	return strings.TrimFunc(s, isFormSpace)
}

// Submission is one filled-in contact form.
type Submission struct {
	Name    string
	Email   string
	Message string
}

// Trimmed returns s with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    trimFormSpace(s.Name),
		Email:   trimFormSpace(s.Email),
		Message: trimFormSpace(s.Message),
	}
}

// Validate checks a trimmed submission.
func Validate(s Submission) error {
	for _, f := range []struct{ name, value string }{
		{"name", s.Name},
		{"email", s.Email},
		{"message", s.Message},
	} {
		if f.value == "" {
			return apperr.NewValidationError(MsgMissingFields, f.name)
		}
	}
	if !ValidEmail(s.Email) {
		return apperr.NewValidationError(MsgInvalidEmail, "email")
	}
	return nil
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
