// Package validate holds the field-level input checks shared by resolvers.
// Rules never short-circuit: callers collect every violation before failing.
package validate

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return v.Var(strings.TrimSpace(s), "required,email") == nil
}

// MinLength reports whether s is non-empty and at least min characters long
// after trimming surrounding whitespace.
func MinLength(s string, min int) bool {
	return v.Var(strings.TrimSpace(s), "required,min="+strconv.Itoa(min)) == nil
}
