package store

import (
	"context"
)

// AdminStore defines the generic table operations behind the admin
// endpoints (/add_entry, /get_entries). These are a deliberate trust
// boundary: the authenticated operator names arbitrary tables and
// columns, and the implementation interpolates those identifiers into
// SQL after quoting. Values are always bound as parameters. Do not route
// unauthenticated input here.
type AdminStore interface {
	// InsertRow inserts a single row of column→value pairs into the named
	// table.
	InsertRow(ctx context.Context, table string, values map[string]any) error

	// SelectRows returns every row of the named table as column→value
	// maps. Returns ErrNotFound when the table does not exist.
	SelectRows(ctx context.Context, table string) ([]map[string]any, error)
}
