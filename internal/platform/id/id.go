// Package id generates identifiers for entities and requests.
//
// Two shapes are provided: NewID returns a random, URL-safe request
// identifier, and Deterministic derives a stable UUIDv5 from a namespace and
// a set of name parts, so the same inputs always produce the same identifier.
package id

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random 26-character lowercase base32 identifier backed by
// a UUIDv4. The encoding drops padding so the value is safe in URLs and logs.
func NewID() (string, error) {
	value, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(value[:])
	return strings.ToLower(encoded), nil
}

// Deterministic derives a UUIDv5 from namespace and the ordered name parts.
//
// The generated value depends on part order: rearranging parts produces a
// different identifier.
func Deterministic(namespace uuid.UUID, parts ...string) uuid.UUID {
	var name []byte
	for _, part := range parts {
		name = append(name, part...)
	}
	return uuid.NewSHA1(namespace, name)
}
