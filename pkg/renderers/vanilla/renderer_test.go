package vanilla_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

func newRenderer(t *testing.T, options ...vanilla.Option) *vanilla.Renderer {
	t.Helper()
	r, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func speciesProps(mode field.Mode) field.Props {
	return field.Props{
		ID:          "speciesName",
		Mode:        mode,
		Name:        "speciesName",
		Label:       "Species Name",
		Placeholder: "Enter Species Name",
	}
}

func renderString(t *testing.T, r *vanilla.Renderer, f *field.Field, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.RenderField(context.Background(), f, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRender_InputAndTextareaExposeTextboxRole(t *testing.T) {
	r := newRenderer(t)

	single := renderString(t, r, field.New(speciesProps(field.ModeSingleLine)), render.RenderOptions{})
	if !strings.Contains(single, `<input type="text" id="speciesName" name="speciesName" role="textbox"`) {
		t.Fatalf("expected text input, got:\n%s", single)
	}

	multi := renderString(t, r, field.New(speciesProps(field.ModeMultiLine)), render.RenderOptions{})
	if !strings.Contains(multi, `<textarea id="speciesName" name="speciesName" role="textbox"`) {
		t.Fatalf("expected textarea, got:\n%s", multi)
	}
	if strings.Contains(multi, "<input") {
		t.Fatalf("multi-line field should not render an input, got:\n%s", multi)
	}
}

func TestRender_LabelAndPlaceholder(t *testing.T) {
	html := renderString(t, newRenderer(t), field.New(speciesProps(field.ModeSingleLine)), render.RenderOptions{})

	for _, want := range []string{
		`<label for="speciesName" id="speciesName-label">Species Name:</label>`,
		`placeholder="Enter Species Name"`,
		`data-state="untouched"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in output:\n%s", want, html)
		}
	}
}

func TestRender_Value(t *testing.T) {
	r := newRenderer(t)

	props := speciesProps(field.ModeSingleLine)
	props.Value = "Humans"
	if html := renderString(t, r, field.New(props), render.RenderOptions{}); !strings.Contains(html, `value="Humans"`) {
		t.Fatalf("expected value attribute, got:\n%s", html)
	}

	props = speciesProps(field.ModeMultiLine)
	props.Value = "\nHumans"
	html := renderString(t, r, field.New(props), render.RenderOptions{})
	if !strings.Contains(html, "\n\nHumans</textarea>") {
		t.Fatalf("expected textarea to preserve the leading newline, got:\n%q", html)
	}
}

func TestRender_EscapesValues(t *testing.T) {
	props := speciesProps(field.ModeSingleLine)
	props.Value = `"><script>alert(1)</script>`

	html := renderString(t, newRenderer(t), field.New(props), render.RenderOptions{})
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected value to be escaped, got:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag, got:\n%s", html)
	}
}

func TestRender_ErrorsOnlyAfterTouch(t *testing.T) {
	stub := &testsupport.ValidatorStub{Messages: []string{"Fake error message", "Another fake error message"}}
	props := speciesProps(field.ModeSingleLine)
	props.Validate = stub.Func()
	f := field.New(props)
	r := newRenderer(t)

	html := renderString(t, r, f, render.RenderOptions{})
	if strings.Contains(html, "Fake error message") || strings.Contains(html, "Another fake error message") {
		t.Fatalf("expected errors hidden before touch, got:\n%s", html)
	}
	if strings.Contains(html, "aria-invalid") {
		t.Fatalf("expected no aria-invalid before touch, got:\n%s", html)
	}
	if stub.Count() != 1 {
		t.Fatalf("expected validator to run during render, got %d calls", stub.Count())
	}

	f.Type("Humans")
	html = renderString(t, r, f, render.RenderOptions{})
	for _, want := range []string{
		`<ul id="speciesName-errors" class="fg-errors" role="alert">`,
		`<li>Fake error message</li>`,
		`<li>Another fake error message</li>`,
		`aria-invalid="true" aria-describedby="speciesName-errors"`,
		`data-state="touched"`,
		`fg-field--invalid`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in output:\n%s", want, html)
		}
	}
}

func TestRender_MessagesArePlainText(t *testing.T) {
	props := speciesProps(field.ModeSingleLine)
	props.Validate = func(string) []string {
		return []string{"Enter a value like <name>@<domain>", "Must be < 5 & > 1", "   "}
	}
	f := field.New(props)
	f.Type("x")

	html := renderString(t, newRenderer(t), f, render.RenderOptions{ErrorID: "custom-errors"})
	for _, want := range []string{
		"<li>Enter a value like &lt;name&gt;@&lt;domain&gt;</li>",
		"<li>Must be &lt; 5 &amp; &gt; 1</li>",
		`id="custom-errors"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in output:\n%s", want, html)
		}
	}
	if strings.Count(html, "<li>") != 2 {
		t.Fatalf("expected blank message dropped, got:\n%s", html)
	}
}

func TestRender_MessagePolicySanitizesMarkup(t *testing.T) {
	props := speciesProps(field.ModeSingleLine)
	props.Validate = func(string) []string {
		return []string{`<b>bad</b> <script>alert(1)</script>`, "<i></i>"}
	}
	f := field.New(props)
	f.Type("x")

	html := renderString(t, newRenderer(t, vanilla.WithMessagePolicy(bluemonday.UGCPolicy())), f, render.RenderOptions{})
	if !strings.Contains(html, "<li><b>bad</b> </li>") {
		t.Fatalf("expected allowed markup kept, got:\n%s", html)
	}
	if strings.Contains(html, "<script>") || strings.Contains(html, "alert(1)") {
		t.Fatalf("expected script removed, got:\n%s", html)
	}
	if strings.Count(html, "<li>") != 2 {
		t.Fatalf("expected both messages listed, got:\n%s", html)
	}
}

func TestRender_NoIDOmitsReferences(t *testing.T) {
	f := field.New(field.Props{
		Label:    "Nickname",
		Validate: func(string) []string { return []string{"Too short"} },
	})
	f.Type("x")

	html := renderString(t, newRenderer(t), f, render.RenderOptions{})
	for _, unwanted := range []string{`for=""`, `id=""`, "aria-describedby", `"-errors"`} {
		if strings.Contains(html, unwanted) {
			t.Fatalf("expected no %s in output:\n%s", unwanted, html)
		}
	}
	for _, want := range []string{"<label>Nickname:</label>", `aria-invalid="true"`, "<li>Too short</li>"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in output:\n%s", want, html)
		}
	}
}

func TestRender_Attributes(t *testing.T) {
	html := renderString(t, newRenderer(t), field.New(speciesProps(field.ModeSingleLine)), render.RenderOptions{
		Attributes: map[string]string{
			"data-testid":  "species",
			"autocomplete": "off",
			"id":           "hijack",
		},
	})
	if !strings.Contains(html, ` autocomplete="off" data-testid="species">`) {
		t.Fatalf("expected sorted extra attributes, got:\n%s", html)
	}
	if strings.Contains(html, "hijack") {
		t.Fatalf("expected reserved attribute to be ignored, got:\n%s", html)
	}
}

func TestRender_ThemePartialsAndCSSVars(t *testing.T) {
	files := fstest.MapFS{}
	for _, name := range []string{"templates/field.tmpl", "templates/input.tmpl", "templates/textarea.tmpl", "templates/errors.tmpl"} {
		data, err := fs.ReadFile(vanilla.TemplatesFS(), name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		files[name] = &fstest.MapFile{Data: data}
	}
	files["themes/acme/input.tmpl"] = &fstest.MapFile{
		Data: []byte(`<input class="acme-input" id="{{ id }}" role="textbox" value="{{ value }}">`),
	}

	r := newRenderer(t, vanilla.WithTemplatesFS(files))
	html := renderString(t, r, field.New(speciesProps(field.ModeSingleLine)), render.RenderOptions{
		Theme: &theme.RendererConfig{
			Theme:    "acme",
			Partials: map[string]string{render.PartialInput: "themes/acme/input.tmpl"},
			CSSVars:  map[string]string{"--brand": "#123456"},
		},
	})

	if !strings.Contains(html, `class="acme-input"`) {
		t.Fatalf("expected themed input partial, got:\n%s", html)
	}
	if !strings.Contains(html, `style="--brand: #123456"`) {
		t.Fatalf("expected css vars on wrapper, got:\n%s", html)
	}
}

func TestRender_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Render(ctx, field.View{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
