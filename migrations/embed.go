// Package migrations embeds the SQL migration files so they can be used
// by the goose Provider in tests and by the migrate command.
// Foreign keys and their ON DELETE CASCADE rules are declared here and
// nowhere else.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem path
// at runtime.
//
//go:embed *.sql
var FS embed.FS
