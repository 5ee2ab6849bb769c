package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

// Collection names in the durable credential store
const (
	CollFarmers   = "farmers"
	CollAdmins    = "admins"
	CollPasswords = "passwords"
	CollOTPs      = "otps"
	CollSessions  = "sessions"
)

// MongoClient represents a MongoDB database client
type MongoClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoClient connects to MongoDB, verifies the connection and creates
// the indexes the credential store relies on.
func NewMongoClient(config models.MongoConfig) (*MongoClient, error) {
	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	mc := &MongoClient{
		client: client,
		db:     client.Database(config.Database),
	}

	if err := mc.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mc, nil
}

// ensureIndexes creates the uniqueness and TTL indexes the store's
// contracts depend on. Index creation is idempotent on restart.
func (m *MongoClient) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	expireNow := options.Index().SetExpireAfterSeconds(0)

	indexes := map[string][]mongo.IndexModel{
		CollFarmers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		CollAdmins: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		CollPasswords: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "user_type", Value: 1}}, Options: unique},
		},
		CollOTPs: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: expireNow},
		},
		CollSessions: {
			{Keys: bson.D{{Key: "token", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: expireNow},
		},
	}

	for coll, idx := range indexes {
		if _, err := m.db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("collection %s: %w", coll, err)
		}
	}

	return nil
}

// Database returns the underlying database handle
func (m *MongoClient) Database() *mongo.Database {
	return m.db
}

// Close disconnects the client
func (m *MongoClient) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
