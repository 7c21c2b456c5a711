// Package uischema loads text field definitions from JSON or YAML files and
// turns them into form definitions with compiled validators. It also overlays
// file-based settings onto definitions derived elsewhere, such as an OpenAPI
// request body.
package uischema
