// Package commitpolicy models and enforces the repository commit-message
// policy.
//
// The policy is a declarative descriptor mapping rule names to a severity,
// an activation condition and a rule-specific parameter. The descriptor is
// authored once, read on every validation and never mutated at runtime. The
// embedded default encodes the repository convention: commits carry a
// lower-case type from a fixed set, a lower-case scope from a fixed set and
// a subject of at least ten characters, with the built-in ignore patterns
// disabled so merge and revert commits are linted like any other.
package commitpolicy
