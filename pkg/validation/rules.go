package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Required rejects values that are empty after trimming whitespace.
func Required(message string) field.Validator {
	return func(value string) []string {
		if strings.TrimSpace(value) == "" {
			return []string{message}
		}
		return nil
	}
}

// MinLength rejects non-empty values shorter than n runes. Empty values are
// left to Required.
func MinLength(n int, message string) field.Validator {
	return MustTag(fmt.Sprintf("omitempty,min=%d", n), Messages{"*": message})
}

// MaxLength rejects values longer than n runes.
func MaxLength(n int, message string) field.Validator {
	return MustTag(fmt.Sprintf("max=%d", n), Messages{"*": message})
}

// Pattern rejects non-empty values that do not match re.
func Pattern(re *regexp.Regexp, message string) field.Validator {
	return func(value string) []string {
		if value == "" || re == nil {
			return nil
		}
		if !re.MatchString(value) {
			return []string{message}
		}
		return nil
	}
}

// Func adapts a single-error check, the shape survey and most hand-written
// checks use.
func Func(check func(string) error) field.Validator {
	return func(value string) []string {
		if check == nil {
			return nil
		}
		if err := check(value); err != nil {
			return []string{err.Error()}
		}
		return nil
	}
}

// Compose runs every validator and concatenates their messages in order.
func Compose(validators ...field.Validator) field.Validator {
	return func(value string) []string {
		var out []string
		for _, validate := range validators {
			if validate == nil {
				continue
			}
			out = append(out, validate(value)...)
		}
		return out
	}
}
