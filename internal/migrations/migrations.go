// Package migrations embeds the SurrealQL schema for the phonebook.
// Files are applied in lexical order by database.Migrate.
package migrations

import "embed"

//go:embed *.surql
var FS embed.FS
