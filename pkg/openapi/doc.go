// Package openapi derives text field definitions from OpenAPI 3 request
// bodies. Documents are parsed with kin-openapi; each string property of an
// operation's request schema becomes one form.Definition.
package openapi
