// Package store persists named JSON documents. Backends only move bytes;
// decoding and the empty-default policy live here.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrCorrupt    = errors.New("corrupt document")
	ErrInvalidKey = errors.New("invalid document key")
)

// Backend stores raw documents by key. Get returns ErrNotFound for keys that
// were never written.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}

var jsonNull = []byte("null")

// Read decodes the document stored under key. A bare null is corrupt: every
// document is a collection and must decode to a usable value.
func Read[T any](ctx context.Context, b Backend, key string) (T, error) {
	var out T
	if err := ValidateKey(key); err != nil {
		return out, err
	}

	body, err := b.Get(ctx, key)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", key, err)
	}
	if bytes.Equal(bytes.TrimSpace(body), jsonNull) {
		return out, fmt.Errorf("read %s: %w: null document", key, ErrCorrupt)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("read %s: %w: %v", key, ErrCorrupt, err)
	}
	return out, nil
}

// ReadOrEmpty is Read with missing and corrupt documents mapped to empty.
// Corrupt content is logged and otherwise ignored; I/O failures still surface.
func ReadOrEmpty[T any](ctx context.Context, b Backend, key string, empty T, logger *zap.Logger) (T, error) {
	out, err := Read[T](ctx, b, key)
	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, ErrNotFound):
		return empty, nil
	case errors.Is(err, ErrCorrupt):
		logger.Warn("ignoring corrupt document", zap.String("key", key), zap.Error(err))
		return empty, nil
	default:
		return empty, err
	}
}

// Write encodes v as indented JSON and replaces whatever was stored under key.
func Write(ctx context.Context, b Backend, key string, v any) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := b.Put(ctx, key, body); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
