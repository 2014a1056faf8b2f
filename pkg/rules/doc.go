// Package rules holds the variable composition table: which environment
// variables ssmuse manages, the subdirectories each one draws from and
// the test a directory must pass before it is added.
package rules
