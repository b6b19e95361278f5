// Package migrations embeds the goose migration set for relations owned by
// the wider admin application. The sessions relation is deliberately absent:
// the session store provisions it itself and must keep working against a
// database where it does not exist yet.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
