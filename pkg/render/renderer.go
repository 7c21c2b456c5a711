package render

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Renderer converts a rendered field view into a byte representation (HTML,
// terminal text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view field.View, options RenderOptions) ([]byte, error)
}
