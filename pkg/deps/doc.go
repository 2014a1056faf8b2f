// Package deps tracks the variables that influence composition besides
// the managed ones, so a repeated request can be recognised as a no-op.
package deps
