package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers can use to customise their
// output without touching field state.
type RenderOptions struct {
	// Theme carries resolved go-theme partials and CSS variables. Renderers
	// use Partials to swap templates (see PartialInput and friends) and emit
	// CSSVars on the field wrapper.
	Theme *theme.RendererConfig
	// Attributes are extra HTML attributes placed on the control element.
	// Attributes the renderer owns (id, name, value, role) are ignored.
	Attributes map[string]string
	// ErrorID overrides the id of the error list; defaults to "<id>-errors".
	ErrorID string
}

// Theme partial keys understood by the built-in renderers.
const (
	PartialInput    = "forms.input"
	PartialTextarea = "forms.textarea"
	PartialErrors   = "forms.errors"
)

// Partial returns the theme override for key, or "" when none is set.
func (o RenderOptions) Partial(key string) string {
	if o.Theme == nil || len(o.Theme.Partials) == 0 {
		return ""
	}
	return o.Theme.Partials[key]
}
