package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/validation"
)

func TestBuild_ComposesInOrder(t *testing.T) {
	validate, err := validation.Build([]validation.Rule{
		{Kind: validation.KindRequired, Message: "Species name is required"},
		{Kind: validation.KindMinLength, Value: "3", Message: "Too short"},
		{Kind: validation.KindPattern, Value: `^[A-Z]`},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	cases := map[string][]string{
		"":       {"Species name is required"},
		"hu":     {"Too short", "Invalid format"},
		"Hu":     {"Too short"},
		"Humans": nil,
	}
	for value, want := range cases {
		if diff := cmp.Diff(want, validate(value)); diff != "" {
			t.Fatalf("validate(%q) mismatch (-want +got):\n%s", value, diff)
		}
	}
}

func TestBuild_DefaultMessages(t *testing.T) {
	validate, err := validation.Build([]validation.Rule{
		{Kind: validation.KindMaxLength, Value: "2"},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := validate("abc")
	if diff := cmp.Diff([]string{"Must be at most 2 characters"}, got); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_TagUsesMessage(t *testing.T) {
	validate, err := validation.Build([]validation.Rule{
		{Kind: validation.KindTag, Value: "alpha", Message: "Letters only"},
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if diff := cmp.Diff([]string{"Letters only"}, validate("abc1")); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Empty(t *testing.T) {
	validate, err := validation.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if validate != nil {
		t.Fatalf("expected nil validator for no rules")
	}
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		rule validation.Rule
		want string
	}{
		{validation.Rule{}, "kind is required"},
		{validation.Rule{Kind: "email"}, `unknown kind "email"`},
		{validation.Rule{Kind: validation.KindMinLength, Value: "x"}, "non-negative integer"},
		{validation.Rule{Kind: validation.KindPattern, Value: "("}, "pattern"},
		{validation.Rule{Kind: validation.KindTag, Value: "nosuchtag"}, "invalid tag"},
	}
	for _, tc := range cases {
		_, err := validation.Build([]validation.Rule{tc.rule})
		if err == nil {
			t.Fatalf("expected error for %+v", tc.rule)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("error %q does not mention %q", err, tc.want)
		}
	}
}
