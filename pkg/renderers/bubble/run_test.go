package bubble_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/renderers/bubble"
)

func TestRun_SubmitsTypedValue(t *testing.T) {
	f, fld := speciesForm(t, field.ModeSingleLine)

	var out bytes.Buffer
	value, err := bubble.Run(context.Background(), fld, strings.NewReader("Humans\x04"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if value != "Humans" || f.Get("speciesName") != "Humans" {
		t.Fatalf("expected Humans, got %q (form %q)", value, f.Get("speciesName"))
	}
}

func TestRun_CancelledContext(t *testing.T) {
	_, fld := speciesForm(t, field.ModeSingleLine)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := bubble.Run(ctx, fld, strings.NewReader(""), &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_NilField(t *testing.T) {
	if _, err := bubble.Run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for nil field")
	}
}
