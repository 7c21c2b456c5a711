package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formfield/pkg/field"
)

var (
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()
	})
	return validatorInstance
}

// Messages maps a validator tag (e.g. "required", "min") to the text shown for
// it. The "*" key is the fallback for tags without their own entry.
type Messages map[string]string

func (m Messages) lookup(fe validator.FieldError) string {
	if msg := strings.TrimSpace(m[fe.Tag()]); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(m["*"]); msg != "" {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("failed %s", fe.Tag())
}

// Tag builds a Validator from a go-playground/validator tag string such as
// "required,min=3,max=40". Every failing rule yields one message. Invalid tags
// are reported when the validator is built, not on each keystroke.
func Tag(tag string, messages Messages) (field.Validator, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return func(string) []string { return nil }, nil
	}
	if err := probeTag(tag); err != nil {
		return nil, err
	}

	return func(value string) []string {
		err := getValidator().Var(value, tag)
		if err == nil {
			return nil
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return []string{err.Error()}
		}
		out := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			out = append(out, messages.lookup(fe))
		}
		return out
	}, nil
}

// MustTag is Tag for static wiring; it panics on invalid tags.
func MustTag(tag string, messages Messages) field.Validator {
	fn, err := Tag(tag, messages)
	if err != nil {
		panic(err)
	}
	return fn
}

// probeTag surfaces unknown tags: validator panics on them at call time.
func probeTag(tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validation: invalid tag %q: %v", tag, r)
		}
	}()
	_ = getValidator().Var("", tag)
	return nil
}
