// Package service implements the domain operations of the gateway on top
// of the store interfaces: enqueueing and listing tasks, status updates,
// fast-interval flagging, and the event log. Services validate input
// before touching the store and emit domain events for successful task
// mutations. Each operation maps to exactly one synchronous store call.
package service
