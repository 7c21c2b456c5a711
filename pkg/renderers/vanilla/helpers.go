package vanilla

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

var reservedAttributes = map[string]struct{}{
	"id":          {},
	"name":        {},
	"value":       {},
	"role":        {},
	"type":        {},
	"placeholder": {},
}

func partial(opts render.RenderOptions, key, fallback string) string {
	if candidate := strings.TrimSpace(opts.Partial(key)); candidate != "" {
		return candidate
	}
	return fallback
}

func errorListID(view field.View, opts render.RenderOptions) string {
	if id := strings.TrimSpace(opts.ErrorID); id != "" {
		return id
	}
	base := strings.TrimSpace(view.ID)
	if base == "" {
		base = strings.TrimSpace(view.Name)
	}
	if base == "" {
		return ""
	}
	return base + "-errors"
}

func labelID(view field.View) string {
	if strings.TrimSpace(view.ID) == "" {
		return ""
	}
	return view.ID + "-label"
}

func stateName(view field.View) string {
	if view.Touched {
		return field.Touched.String()
	}
	return field.Untouched.String()
}

func wrapperClasses(view field.View, invalid bool) string {
	classes := []string{"fg-field"}
	if view.Multiline() {
		classes = append(classes, "fg-field--multiline")
	}
	if invalid {
		classes = append(classes, "fg-field--invalid")
	}
	return strings.Join(classes, " ")
}

// attributeString renders extra attributes in a stable order, skipping the
// ones the templates own.
func attributeString(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		trimmed := strings.ToLower(strings.TrimSpace(key))
		if trimmed == "" || strings.ContainsAny(trimmed, " \"'<>/=") {
			continue
		}
		if _, reserved := reservedAttributes[trimmed]; reserved {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(strings.ToLower(strings.TrimSpace(key))))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attrs[key]))
		builder.WriteByte('"')
	}
	return builder.String()
}

func themeStyle(opts render.RenderOptions) string {
	if opts.Theme == nil || len(opts.Theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(opts.Theme.CSSVars))
	for key := range opts.Theme.CSSVars {
		if strings.HasPrefix(key, "--") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+opts.Theme.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
