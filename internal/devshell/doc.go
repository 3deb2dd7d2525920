// Package devshell models the repository's reproducible development
// environment: pinned remote inputs, target systems and a derived shell
// with a toolchain, auxiliary tools and a post-activation hook.
//
// The descriptor is declarative and read-only; resolution against a lock
// table is a pure function, so the same descriptor and lock always yield
// the same pinned toolchain and package set.
package devshell
