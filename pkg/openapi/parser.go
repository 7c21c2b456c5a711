package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrOperationNotFound is returned when an operation id is not in the document.
var ErrOperationNotFound = errors.New("openapi: operation not found")

type parseConfig struct {
	validate     bool
	externalRefs bool
}

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

// WithValidation validates the document after loading. Examples are not
// validated.
func WithValidation(enabled bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.validate = enabled
	}
}

// WithExternalRefs allows $ref to point outside the document.
func WithExternalRefs(enabled bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.externalRefs = enabled
	}
}

// Spec is a parsed document indexed by operation id.
type Spec struct {
	location   string
	operations map[string]*openapi3.Operation
}

// Parse loads doc with kin-openapi and indexes its operations. Operations
// without an operationId are keyed as "method:path".
func Parse(ctx context.Context, doc Document, options ...ParseOption) (*Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := parseConfig{validate: true}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: cfg.externalRefs,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", doc.Location(), err)
	}
	if cfg.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate %s: %w", doc.Location(), err)
		}
	}

	out := &Spec{
		location:   doc.Location(),
		operations: make(map[string]*openapi3.Operation),
	}
	if spec.Paths == nil {
		return out, nil
	}
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op == nil {
				continue
			}
			id := op.OperationID
			if id == "" {
				id = strings.ToLower(method) + ":" + path
			}
			out.operations[id] = op
		}
	}
	return out, nil
}

// OperationIDs lists the indexed operations in sorted order.
func (s *Spec) OperationIDs() []string {
	ids := make([]string, 0, len(s.operations))
	for id := range s.operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Spec) requestSchema(operationID string) (*openapi3.Schema, error) {
	op, ok := s.operations[operationID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil, fmt.Errorf("openapi: operation %q has no request body", operationID)
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value, nil
		}
	}
	return nil, fmt.Errorf("openapi: operation %q has no form request schema", operationID)
}
