// Package store defines the persistence interfaces the service layer
// depends on, along with the sentinel errors shared by all store
// implementations. Concrete implementations live under
// internal/platform/postgres.
package store
