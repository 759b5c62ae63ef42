// Package kv provides the durable key-value storage boundary used to persist
// locale selections between sessions. Implementations work with plain string
// values; callers that need richer data serialize it themselves.
package kv

import (
	"context"
	"net/url"
	"strings"
)

// Storage is the low-level durable storage interface.
type Storage interface {
	// Get retrieves the value stored under key, reporting whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the value stored under key.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the storage.
	Close() error
}

// Opener connects a storage backend for the given URI.
type Opener func(ctx context.Context, uri string) (Storage, error)

var openers = map[string]Opener{}

// RegisterOpener registers a storage backend for a URI scheme. Backend
// packages call this from init so importing them is enough to enable
// their scheme.
func RegisterOpener(scheme string, open Opener) {
	openers[scheme] = open
}

// FromURI connects the storage backend selected by the URI scheme.
// An empty URI or the mem scheme yields the in-memory storage; unknown
// schemes fall back to in-memory as well so a misconfigured environment
// still renders, just without persistence across restarts.
func FromURI(ctx context.Context, uri string) (Storage, error) {
	if uri == "" {
		return NewInMemory(), nil
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return NewInMemory(), nil
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme == "" || scheme == "mem" {
		return NewInMemory(), nil
	}

	open, ok := openers[scheme]
	if !ok {
		return NewInMemory(), nil
	}

	return open(ctx, uri)
}
