// Package pantry exposes module-level metadata.
package pantry

// Version is the pantry module version.
const Version = "0.1.0"
