// Package migrations embebe las migraciones SQL de la base de datos para
// aplicarlas con goose al arrancar.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
