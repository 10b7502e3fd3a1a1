package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pegflow/daxport/pkg/errors"
	"github.com/pegflow/daxport/pkg/io"
)

// MongoStore persists workflow documents in a MongoDB collection.
// Each workflow is one document keyed by its name field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB server at uri and uses the given
// database. Documents are stored in the "workflows" collection, with a
// unique index on the name field.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongodb")
	}

	coll := client.Database(database).Collection("workflows")
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create workflow name index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Put stores doc under name, replacing any existing document.
func (s *MongoStore) Put(ctx context.Context, name string, doc io.Graph) error {
	if err := errors.ValidateWorkflowName(name); err != nil {
		return err
	}
	doc.Name = name
	_, err := s.coll.ReplaceOne(ctx, bson.M{"name": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "store workflow %q", name)
	}
	return nil
}

// Get retrieves the document stored under name.
func (s *MongoStore) Get(ctx context.Context, name string) (io.Graph, error) {
	var doc io.Graph
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return io.Graph{}, errors.New(errors.ErrCodeWorkflowNotFound, "workflow %q not found", name)
	}
	if err != nil {
		return io.Graph{}, errors.Wrap(errors.ErrCodeInternal, err, "load workflow %q", name)
	}
	return doc, nil
}

// Delete removes the document stored under name.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "delete workflow %q", name)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeWorkflowNotFound, "workflow %q not found", name)
	}
	return nil
}

// List returns the names of all stored workflows.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	cur, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list workflows")
	}
	defer cur.Close(ctx)

	var names []string
	for cur.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode workflow name")
		}
		names = append(names, doc.Name)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list workflows")
	}
	return names, nil
}

// Close disconnects from the MongoDB server.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
