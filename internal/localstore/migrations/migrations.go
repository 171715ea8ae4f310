// Package migrations embeds the localstore schema migrations for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
