package utils

import (
	"errors"
	"regexp"
)

var reStateCode = regexp.MustCompile(`^[A-Z]{2}$`)

// EnumValidator restricts a string field to a fixed set of values.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return errors.New("validation failed")
	}
}

// StateCodeValidator accepts empty (optional column) or a two-letter
// uppercase state code.
func StateCodeValidator() func(string) error {
	return func(s string) error {
		if s == "" || reStateCode.MatchString(s) {
			return nil
		}
		return errors.New("invalid state code")
	}
}
