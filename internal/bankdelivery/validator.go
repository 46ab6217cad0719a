package bankdelivery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// MaxAccountNameLen is the longest accepted account name in characters.
const MaxAccountNameLen = 100

// ValidAccountName validates whether the string can name an account: not
// blank, no surrounding spaces, no control characters.
var ValidAccountName validator.Func = func(fl validator.FieldLevel) bool {
	name, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	if name == "" || name != strings.TrimSpace(name) || utf8.RuneCountInString(name) > MaxAccountNameLen {
		return false
	}

	return strings.IndexFunc(name, unicode.IsControl) < 0
}
