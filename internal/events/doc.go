// Package events provides task lifecycle events and the interfaces used to
// publish and consume them.
//
// Services emit events after a mutation has been applied, without knowing
// which handlers will process them. The primary components are:
// - TaskEvent: describes a created, updated or deleted task
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
// - AuditLogHandler: writes every event to the structured log
package events
