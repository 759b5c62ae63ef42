// Package valkey provides a Valkey-backed durable storage implementation
// using the official Valkey client. Importing the package registers the
// valkey and valkeys URI schemes with the kv factory.
package valkey

import (
	"context"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/voyago/locale/kv"
)

const connectionTimeout = 5 * time.Second

func init() {
	kv.RegisterOpener("valkey", Open)
	kv.RegisterOpener("valkeys", Open)
}

// Storage is a Valkey-backed storage implementation.
type Storage struct {
	client valkey.Client
}

// Open connects to the Valkey instance described by the URI. The valkey
// client only understands redis style URIs, so the scheme is rewritten
// before parsing.
func Open(ctx context.Context, uri string) (kv.Storage, error) {
	uri = strings.Replace(uri, "valkeys://", "rediss://", 1)
	uri = strings.Replace(uri, "valkey://", "redis://", 1)

	opts, err := valkey.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if pingErr := client.Do(pingCtx, client.B().Ping().Build()).Error(); pingErr != nil {
		client.Close()
		return nil, pingErr
	}

	return &Storage{client: client}, nil
}

// Get retrieves the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	resp := s.client.Do(ctx, s.client.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}

	val, err := resp.ToString()
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key without expiry.
func (s *Storage) Set(ctx context.Context, key string, value string) error {
	return s.client.Do(ctx, s.client.B().Set().Key(key).Value(value).Build()).Error()
}

// Delete removes the value stored under key.
func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Do(ctx, s.client.B().Del().Key(key).Build()).Error()
}

// Close releases the underlying client.
func (s *Storage) Close() error {
	s.client.Close()
	return nil
}
