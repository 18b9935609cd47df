// Package types defines the configuration, entity structs, and standard
// errors for the camino trail data store.
package types
