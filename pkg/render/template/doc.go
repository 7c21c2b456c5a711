// Package template defines the template seam the HTML field renderer depends
// on. The gotemplate subpackage provides the default pongo2-backed engine;
// callers can inject any implementation satisfying TemplateRenderer.
package template
