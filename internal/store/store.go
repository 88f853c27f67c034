// Package store provides the durable key-value blob space the workspace
// snapshots into. The workspace only ever needs Get and Set over a handful of
// string keys; everything else about durability lives behind this interface.
package store

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is a synchronous, client-local key-value space.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}
