// Package api implements the HTTP handlers of the gateway. Handlers
// decode and validate request payloads, delegate to the service layer,
// and encode the status/message envelope the worker bots consume.
package api
