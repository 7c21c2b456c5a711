package uischema

import (
	"embed"
	"io/fs"
)

//go:embed schema/*
var embeddedSchema embed.FS

// EmbeddedFS returns the bundled sample schema. Callers may pass it to LoadFS.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedSchema, "schema")
	if err != nil {
		panic(err)
	}
	return sub
}
