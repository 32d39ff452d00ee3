package figstore

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tracekit/tracekit/pkg/errors"
	"github.com/tracekit/tracekit/pkg/observability"
)

// MongoStore persists figure documents in a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB instance at uri and uses the
// "figures" collection of the named database.
func NewMongoStore(ctx context.Context, uri, database string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "ping %s", uri)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("figures"),
	}, nil
}

// Save implements Store.
func (s *MongoStore) Save(ctx context.Context, kind string, scene []byte) (string, error) {
	start := time.Now()
	doc := Document{
		ID:        uuid.NewString(),
		Kind:      kind,
		Scene:     scene,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.coll.InsertOne(ctx, doc)
	observability.Store().OnStoreSave(ctx, doc.ID, time.Since(start), err)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStore, err, "save figure")
	}
	return doc.ID, nil
}

// Load implements Store.
func (s *MongoStore) Load(ctx context.Context, id string) (*Document, error) {
	start := time.Now()
	var doc Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	observability.Store().OnStoreLoad(ctx, id, time.Since(start), err)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodeFigureNotFound, "figure not found: %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "load figure %s", id)
	}
	return &doc, nil
}

// List implements Store.
func (s *MongoStore) List(ctx context.Context, limit int) ([]Document, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit)).
		// Scenes can be large; listings only need the metadata.
		SetProjection(bson.M{"scene": 0})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list figures")
	}
	defer cursor.Close(ctx)

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "decode figure listing")
	}
	return docs, nil
}

// Delete implements Store.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete figure %s", id)
	}
	return nil
}

// Close implements Store.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
