// Package events provides a small in-process event system. The task
// service emits a TaskEvent for every successful mutation; registered
// handlers react to them, most notably the LogRecorder which appends
// them to the persistent event log. Emission is best-effort: a failing
// handler never fails the operation that produced the event.
package events
