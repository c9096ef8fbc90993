// Package id generates sortable identifiers for sessions and log correlation.
package id

import "github.com/oklog/ulid/v2"

// New returns a fresh ULID string. It is safe for concurrent use.
func New() string {
	return ulid.Make().String()
}
