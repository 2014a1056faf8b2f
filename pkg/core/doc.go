// Package core runs one ssmuse request: it parses the load tokens,
// classifies each target, composes the variable mutations and drives
// the shell emitter to produce the script the caller's shell sources.
//
// # Request stream
//
// Tokens are processed left to right:
//
//	-d|+d DOMAIN      load every platform layer of a domain
//	-p|+p PACKAGE     load a package
//	-f|+f DIRECTORY   load a plain directory tree
//	-x|+x PATH        classify PATH, then load it as one of the above
//	--append          force append mode for the following tokens
//	--prepend         force prepend mode for the following tokens
//	-v                trace to stderr while the script runs
//
// A leading "-" prepends, "+" appends. A forced mode, including one
// inherited through SSMUSE_PENDMODE from an outer load, overrides the
// sign.
//
// # Dependency guard
//
// Profile scripts sourced by a domain or package may change the
// variables composition depends on (SSMUSE_XINCDIRS and the names they
// reference). When that can happen, the script checks those variables
// right after the step and, if they differ from what this process saw,
// hands the remaining tokens to a fresh ssmuse invocation. Steps that
// source nothing are followed inline.
package core
