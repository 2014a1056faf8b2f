// Package compose turns a base directory and the rule table into the
// list of variable mutations a load step performs.
//
// Composition never touches the live process environment. It reads an
// immutable types.Environment snapshot and returns Mutations; the shell
// emitter decides how each one is written, and Apply replays them
// against a snapshot when the caller needs to know the outcome.
package compose
