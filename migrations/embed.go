// Package migrations embeds the relational schema so the binary does not
// depend on its working directory.
package migrations

import "embed"

// FS holds the ordered *.sql migration files.
//
//go:embed *.sql
var FS embed.FS
