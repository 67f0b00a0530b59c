// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies through constructor injection and
// translate store errors into service-level sentinel errors that the API
// layer maps onto HTTP status codes.
package service
