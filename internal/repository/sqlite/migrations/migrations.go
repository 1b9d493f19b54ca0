// Package migrations holds the SQLite schema as numbered SQL files and
// applies them in filename order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
