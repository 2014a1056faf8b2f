// Package classify decides whether a load argument names a domain, a
// package or a plain directory, and where it lives.
package classify
