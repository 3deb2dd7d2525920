// Package identity hosts the user identity service: deterministic user
// identifiers derived from email addresses, SQLite-backed persistence and a
// JSON HTTP API for registering and fetching users.
package identity
