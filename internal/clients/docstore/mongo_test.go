package docstore

import (
	"context"
	"errors"
	"os"
	"testing"

	"planboard/internal/config"
	"planboard/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownMongoWithoutInit(t *testing.T) {
	// never initialized in this process: must be a clean no-op
	assert.NoError(t, ShutdownMongo(context.Background()))
	assert.Nil(t, MongoDB())
}

func TestOpenMongoDriverWithoutInit(t *testing.T) {
	cfg := config.Config{StorageDriver: config.DriverMongo}

	_, err := Open(cfg, silentLogger)
	assert.Error(t, err)
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := config.Config{StorageDriver: "s3"}

	_, err := Open(cfg, silentLogger)
	assert.Error(t, err)
}

// TestMongoBlobRoundTrip needs a reachable mongod; set MONGO_TEST_URI to run it.
func TestMongoBlobRoundTrip(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	cfg := config.Config{MongoURI: uri, MongoDBName: "planboard_test"}

	_, db, err := InitMongo(ctx, cfg, silentLogger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Collection(documentsCollection).Drop(context.Background())
		_ = ShutdownMongo(context.Background())
	})

	blob := NewMongoBlob(db)

	_, err = blob.Load(ctx)
	assert.True(t, errors.Is(err, ErrNotFound), "empty collection yields ErrNotFound")

	doc := planner.DefaultDocument()
	doc.Notes = []planner.Note{{ID: "n1", Date: "2025-06-01", Text: "stored in mongo"}}
	raw, err := Encode(doc)
	require.NoError(t, err)

	require.NoError(t, blob.Save(ctx, raw))
	// second save must upsert over the same record, not grow the collection
	require.NoError(t, blob.Save(ctx, raw))

	loaded, err := blob.Load(ctx)
	require.NoError(t, err)

	got, err := Decode(loaded)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}
