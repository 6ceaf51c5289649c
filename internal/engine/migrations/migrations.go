// Package migrations embeds the SQL migrations applied to the embedded
// database on every startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
