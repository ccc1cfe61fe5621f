// Package domain defines the core business entities of the gateway: the
// Task records consumed by external worker bots and the append-only
// LogEvent records, together with their validation rules and errors.
package domain
