// Package types defines the Store interface, the schema-less record data
// model, and standard errors for the Pantry flat-file record store.
package types
