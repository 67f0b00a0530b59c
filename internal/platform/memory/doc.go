// Package memory provides process-local implementations of the store interfaces.
//
// Nothing held here survives a restart. All stores are safe for concurrent use.
package memory
