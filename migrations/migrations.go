// Package migrations embeds the SQL schema migrations for every supported
// storage backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
