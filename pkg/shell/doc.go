// Package shell writes the script a user's shell sources to apply a
// composition. Each dialect implements Emitter; callers never branch on
// the dialect themselves.
package shell
