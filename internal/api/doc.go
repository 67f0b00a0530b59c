// Package api handles incoming HTTP requests, request validation,
// and response formatting for the task resource. It acts as an adapter between
// external clients and the internal task service, translating HTTP concerns to
// business operations.
package api
