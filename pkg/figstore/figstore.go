// Package figstore persists rendered figures for later retrieval.
//
// The server uses it to hand out stable figure IDs: a render request can
// ask for its figure to be stored, and the returned ID fetches the same
// scene later without re-rendering. Two backends share one interface: a
// MongoDB store for deployments and an in-memory store for tests and
// single-process runs.
package figstore

import (
	"context"
	"time"
)

// Document is one stored figure: the rendered scene plus enough metadata
// to list and expire it.
type Document struct {
	// ID is a UUID assigned at save time.
	ID string `bson:"_id" json:"id"`
	// Kind is the graph kind the figure was rendered from.
	Kind string `bson:"kind" json:"kind"`
	// Scene is the JSON trace/layout scene.
	Scene []byte `bson:"scene" json:"scene"`
	// CreatedAt is the save timestamp.
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Store saves and loads figure documents.
type Store interface {
	// Save stores a scene and returns its assigned ID.
	Save(ctx context.Context, kind string, scene []byte) (string, error)

	// Load fetches a document by ID. A missing ID is an
	// ErrCodeFigureNotFound error.
	Load(ctx context.Context, id string) (*Document, error)

	// List returns the most recent documents, newest first, up to limit.
	List(ctx context.Context, limit int) ([]Document, error)

	// Delete removes a document by ID. Deleting a missing ID is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
