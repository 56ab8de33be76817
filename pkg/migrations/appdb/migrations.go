// Package appdb holds all the migrations for the CryptoBallot database
package appdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the ordered set of schema migrations. Each numbered file
// registers itself from init.
var Migrations = migrate.NewMigrations()
