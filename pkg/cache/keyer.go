package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Keyer derives cache keys for the two cached object kinds: rendered
// figures (keyed by their request payload) and stored figure documents
// (keyed by their ID).
type Keyer interface {
	// RenderKey keys a rendered figure by the serialized graph that
	// produced it.
	RenderKey(payload []byte) string

	// FigureKey keys a stored figure document by its ID.
	FigureKey(id string) string
}

// DefaultKeyer derives keys with typed prefixes and SHA-256 payload
// digests.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey returns "render:" plus the payload digest.
func (DefaultKeyer) RenderKey(payload []byte) string {
	return fmt.Sprintf("render:%s", Hash(payload))
}

// FigureKey returns "figure:" plus the ID.
func (DefaultKeyer) FigureKey(id string) string {
	return fmt.Sprintf("figure:%s", id)
}

// ScopedKeyer prefixes every key of an inner keyer, isolating cache
// namespaces when several deployments share one redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer prepending prefix to all keys. A nil
// inner keyer falls back to the default.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RenderKey implements Keyer.
func (k *ScopedKeyer) RenderKey(payload []byte) string {
	return k.prefix + k.inner.RenderKey(payload)
}

// FigureKey implements Keyer.
func (k *ScopedKeyer) FigureKey(id string) string {
	return k.prefix + k.inner.FigureKey(id)
}

// Hash computes the SHA-256 hex digest of data.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
