package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	documentsCollection = "documents"
	opTimeout           = 5 * time.Second
)

// blobRecord is the shape of the single document in the collection.
type blobRecord struct {
	ID        string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBlob stores the document blob as one record under StorageKey.
type MongoBlob struct {
	coll *mongo.Collection
}

// NewMongoBlob creates a mongo-backed blob in the documents collection.
func NewMongoBlob(db *mongo.Database) *MongoBlob {
	return &MongoBlob{coll: db.Collection(documentsCollection)}
}

// Load reads the blob record.
func (m *MongoBlob) Load(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var rec blobRecord
	err := m.coll.FindOne(ctx, bson.M{"_id": StorageKey}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find document blob: %w", err)
	}
	return rec.Data, nil
}

// Save upserts the blob record.
func (m *MongoBlob) Save(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rec := blobRecord{
		ID:        StorageKey,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": StorageKey}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert document blob: %w", err)
	}
	return nil
}
