package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("document not found")

const connectTimeout = 10 * time.Second

type MongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDB dials the database and pings it once. The caller is expected
// to treat a returned error as fatal - the service must not start serving
// without a reachable database.
func NewMongoDB(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return &MongoDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return &MongoDB{}, fmt.Errorf("ping database: %w", err)
	}

	return &MongoDB{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect from database: %w", err)
	}
	return nil
}

// InsertOne inserts a single document and returns the generated id as hex.
func (m *MongoDB) InsertOne(ctx context.Context, collection string, document any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		return "", fmt.Errorf("insert into %q: %w", collection, err)
	}

	objID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type: %T", res.InsertedID)
	}
	return objID.Hex(), nil
}

func (m *MongoDB) FindOne(ctx context.Context, collection string, filter any, result any) error {
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("find one in %q: %w", collection, err)
	}
	return nil
}

func (m *MongoDB) FindAll(ctx context.Context, collection string, filter any, results any) error {
	cursor, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %q: %w", collection, err)
	}

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode cursor from %q: %w", collection, err)
	}
	return nil
}

func (m *MongoDB) UpdateOne(ctx context.Context, collection string, filter any, update any) error {
	_, err := m.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update one in %q: %w", collection, err)
	}
	return nil
}

// DeleteOne removes at most one document and reports how many were deleted.
func (m *MongoDB) DeleteOne(ctx context.Context, collection string, filter any) (int64, error) {
	res, err := m.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete one in %q: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// FindOneAndUpdate applies the update atomically and decodes the document
// as it exists after the modification.
func (m *MongoDB) FindOneAndUpdate(ctx context.Context, collection string, filter any, update any, result any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := m.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("find and update in %q: %w", collection, err)
	}
	return nil
}
