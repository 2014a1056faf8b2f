// Package testutil provides fixtures for ssmuse tests: in-memory
// filesystems populated with domains, packages and platform records, and
// environment snapshots built from KEY=VALUE pairs.
package testutil
