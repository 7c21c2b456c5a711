package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/renderers/tui"
)

type scriptedDriver struct {
	inputs    []string
	textAreas []string
}

func (d *scriptedDriver) Input(context.Context, tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) TextArea(context.Context, tui.TextAreaConfig) (string, error) {
	if len(d.textAreas) == 0 {
		return "", errors.New("no text scripted")
	}
	next := d.textAreas[0]
	d.textAreas = d.textAreas[1:]
	return next, nil
}

func (d *scriptedDriver) Info(context.Context, string) error {
	return nil
}

func TestRender_HTMLFromBundledSample(t *testing.T) {
	var out bytes.Buffer
	command := &RenderCommand{Renderer: "html", out: &out}

	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	html := out.String()
	for _, want := range []string{`data-field="speciesName"`, "Species Name:", "<textarea", `placeholder="Enter Species Name"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
	if strings.Contains(html, "Species name is required") {
		t.Fatalf("untouched render must not show errors:\n%s", html)
	}
}

func TestRender_HTMLTouched(t *testing.T) {
	var out bytes.Buffer
	command := &RenderCommand{Renderer: "html", Touched: true, out: &out}

	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Species name is required") {
		t.Fatalf("expected visible error once touched:\n%s", out.String())
	}
}

func TestRender_TextWithValues(t *testing.T) {
	var out bytes.Buffer
	command := &RenderCommand{
		Renderer: "text",
		Touched:  true,
		Values:   []string{"speciesName=Hu"},
		out:      &out,
	}

	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Species Name: Hu\n  ✗ Too short\n") {
		t.Fatalf("unexpected text output:\n%s", out.String())
	}
}

func TestRender_TUICollectsValues(t *testing.T) {
	var out bytes.Buffer
	command := &RenderCommand{
		Renderer: "tui",
		out:      &out,
		driver:   &scriptedDriver{inputs: []string{"Humans"}, textAreas: []string{"Two legs"}},
	}

	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertValues(t, out.Bytes(), map[string]string{"speciesName": "Humans", "description": "Two legs"})
}

func TestRender_TerminalCollectsValues(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer sim.Fini()

	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	for _, r := range "Fur" {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	sim.InjectKey(tcell.KeyCtrlD, 0, tcell.ModNone)

	var out bytes.Buffer
	command := &RenderCommand{
		Renderer: "terminal",
		Values:   []string{"speciesName=Humans"},
		out:      &out,
		screen:   sim,
	}
	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	assertValues(t, out.Bytes(), map[string]string{"speciesName": "Humans", "description": "Fur"})
}

func TestRender_ConfigDirectory(t *testing.T) {
	dir := t.TempDir()
	schema := "forms:\n  contact:\n    fields:\n      - name: email\n        label: Email\n"
	if err := os.WriteFile(filepath.Join(dir, "contact.yaml"), []byte(schema), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}

	var out bytes.Buffer
	command := &RenderCommand{SourceFlags: SourceFlags{Config: dir}, Renderer: "text", out: &out}
	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "Email:\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRender_RejectsBadValue(t *testing.T) {
	command := &RenderCommand{Renderer: "html", Values: []string{"speciesName"}, out: &bytes.Buffer{}}
	if err := command.run(context.Background()); err == nil {
		t.Fatalf("expected error for malformed --value")
	}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	command := &ListCommand{out: &out}
	if err := command.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := out.String(); got != "form\tspecies\t2 field(s)\tspecies.yaml\n" {
		t.Fatalf("unexpected list output %q", got)
	}
}

func assertValues(t *testing.T, raw []byte, want map[string]string) {
	t.Helper()
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode values: %v\n%s", err, raw)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
