// Package migrations embeds the goose SQL migrations for the library schema.
package migrations

import "embed"

// Dir is the migrations directory inside FS.
const Dir = "."

//go:embed *.sql
var FS embed.FS
