// Package types holds the small value types shared across ssmuse: the kind
// of a load target, the pending mode of a load and the immutable environment
// snapshot every composition step reads from.
package types
