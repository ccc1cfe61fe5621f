// Package postgres implements the store interfaces against PostgreSQL,
// accessed through database/sql with the pgx stdlib driver. It owns the
// tasks and logs schema and the mapping from driver errors to the
// sentinel errors defined in the store package.
package postgres
