package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Rule kinds understood by Build.
const (
	KindRequired  = "required"
	KindMinLength = "minLength"
	KindMaxLength = "maxLength"
	KindPattern   = "pattern"
	KindTag       = "tag"
)

// Rule is a declarative validation rule as found in definition files and
// schema documents. Value carries the kind's parameter: a length, a regular
// expression, or a validator tag string.
type Rule struct {
	Kind    string `json:"kind" yaml:"kind"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Build compiles rules into a single Validator that reports messages in rule
// order. An empty rule list yields a nil Validator.
func Build(rules []Rule) (field.Validator, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	validators := make([]field.Validator, 0, len(rules))
	for idx, rule := range rules {
		fn, err := buildRule(rule)
		if err != nil {
			return nil, fmt.Errorf("validation: rule %d: %w", idx, err)
		}
		validators = append(validators, fn)
	}
	return Compose(validators...), nil
}

func buildRule(rule Rule) (field.Validator, error) {
	kind := strings.TrimSpace(rule.Kind)
	value := strings.TrimSpace(rule.Value)
	msg := strings.TrimSpace(rule.Message)

	switch kind {
	case KindRequired:
		return Required(orDefault(msg, "This field is required")), nil
	case KindMinLength, KindMaxLength:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s expects a non-negative integer, got %q", kind, rule.Value)
		}
		if kind == KindMinLength {
			return MinLength(n, orDefault(msg, fmt.Sprintf("Must be at least %d characters", n))), nil
		}
		return MaxLength(n, orDefault(msg, fmt.Sprintf("Must be at most %d characters", n))), nil
	case KindPattern:
		re, err := regexp.Compile(rule.Value)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", rule.Value, err)
		}
		return Pattern(re, orDefault(msg, "Invalid format")), nil
	case KindTag:
		var messages Messages
		if msg != "" {
			messages = Messages{"*": msg}
		}
		return Tag(value, messages)
	case "":
		return nil, fmt.Errorf("kind is required")
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
