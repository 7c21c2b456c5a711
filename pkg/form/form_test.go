package form_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/validation"
)

func speciesDefs() []form.Definition {
	return []form.Definition{
		{
			Name:     "speciesName",
			Label:    "Species Name",
			Mode:     field.ModeSingleLine,
			Validate: validation.Compose(validation.Required("Species name is required"), validation.MinLength(3, "Too short")),
		},
		{
			Name:  "reasonForSparing",
			Label: "Reason for sparing",
			Mode:  field.ModeMultiLine,
		},
	}
}

func TestForm_TypingUpdatesStateAndField(t *testing.T) {
	var changes []string
	f, err := form.New(speciesDefs(), form.WithChangeListener(func(name, value string) {
		changes = append(changes, name+"="+value)
	}))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	species, ok := f.Field("speciesName")
	if !ok {
		t.Fatalf("expected speciesName field")
	}
	species.Type("Humans")

	if got := f.Get("speciesName"); got != "Humans" {
		t.Fatalf("expected stored value %q, got %q", "Humans", got)
	}
	if got := species.Render().Value; got != "Humans" {
		t.Fatalf("expected field to show stored value, got %q", got)
	}
	if len(changes) != 6 || changes[5] != "speciesName=Humans" {
		t.Fatalf("unexpected change log %v", changes)
	}
}

func TestForm_ErrorsIgnoreTouchedState(t *testing.T) {
	f, err := form.New(speciesDefs())
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	want := map[string][]string{"speciesName": {"Species name is required"}}
	if diff := cmp.Diff(want, f.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if f.Valid() {
		t.Fatalf("expected invalid form")
	}
	for _, view := range f.Views() {
		if len(view.VisibleErrors()) != 0 {
			t.Fatalf("expected no visible errors on untouched field %q", view.Name)
		}
	}

	f.Set("Vulcans", "speciesName")
	if !f.Valid() {
		t.Fatalf("expected valid form, got %v", f.Errors())
	}
}

func TestForm_PrefillAndOrder(t *testing.T) {
	f, err := form.New(speciesDefs(), form.WithValues(map[string]string{"reasonForSparing": "They make tea"}))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	views := f.Views()
	if len(views) != 2 || views[0].Name != "speciesName" || views[1].Name != "reasonForSparing" {
		t.Fatalf("unexpected view order %+v", views)
	}
	if views[1].Value != "They make tea" {
		t.Fatalf("expected prefilled value, got %q", views[1].Value)
	}
	if views[0].ID != "speciesName" {
		t.Fatalf("expected id to default to name, got %q", views[0].ID)
	}
}

func TestForm_RejectsDuplicateAndEmptyNames(t *testing.T) {
	if _, err := form.New([]form.Definition{{Name: "a"}, {Name: "a"}}); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if _, err := form.New([]form.Definition{{Name: " "}}); err == nil {
		t.Fatalf("expected empty name error")
	}
}

func TestForm_SetUnknownFieldIsIgnored(t *testing.T) {
	f, err := form.New(speciesDefs())
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	f.Set("x", "unknown")
	if _, ok := f.Values()["unknown"]; ok {
		t.Fatalf("expected unknown field to be ignored")
	}
}

func TestForm_ErrorsLetValidatorsUseTheForm(t *testing.T) {
	var f *form.Form
	matchesPassword := func(value string) []string {
		done := make(chan struct{})
		go func() {
			f.Set("changed", "password")
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(time.Second):
			return []string{"form locked during validation"}
		}
		if value != f.Get("password") {
			return []string{"Does not match"}
		}
		return nil
	}

	f, err := form.New([]form.Definition{
		{Name: "password", Value: "secret"},
		{Name: "confirm", Value: "secret", Validate: matchesPassword},
	})
	if err != nil {
		t.Fatalf("new form: %v", err)
	}

	want := map[string][]string{"confirm": {"Does not match"}}
	if diff := cmp.Diff(want, f.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if got := f.Get("password"); got != "changed" {
		t.Fatalf("expected write during validation to land, got %q", got)
	}
}
