// Package mongodb implements the transaction log using MongoDB
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sirosfoundation/go-x12/internal/storage"
)

// Store implements storage.TransactionStore using MongoDB
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions *mongo.Collection
}

// Config holds MongoDB connection settings
type Config struct {
	URI        string
	Database   string
	Collection string
}

// NewStore creates a new MongoDB store
func NewStore(ctx context.Context, cfg *Config) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)
	collection := cfg.Collection
	if collection == "" {
		collection = "transactions"
	}

	s := &Store{
		client:       client,
		db:           db,
		transactions: db.Collection(collection),
	}

	if err := s.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("creating indexes: %w", err)
	}

	return s, nil
}

func (s *Store) createIndexes(ctx context.Context) error {
	_, err := s.transactions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "direction", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "partner", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating transaction indexes: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ping verifies database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// CreateTransaction appends one record to the log
func (s *Store) CreateTransaction(ctx context.Context, rec *storage.TransactionRecord) error {
	_, err := s.transactions.InsertOne(ctx, rec)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("transaction %s already logged", rec.ID)
	}
	return err
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*storage.TransactionRecord, error) {
	var rec storage.TransactionRecord
	err := s.transactions.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rec, err
}

func (s *Store) ListTransactions(ctx context.Context, filter *storage.TransactionFilter) ([]*storage.TransactionRecord, error) {
	query := bson.M{}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	if filter != nil {
		if filter.Type != "" {
			query["type"] = filter.Type
		}
		if filter.Direction != "" {
			query["direction"] = filter.Direction
		}
		if filter.Partner != "" {
			query["partner"] = filter.Partner
		}
		if filter.Limit > 0 {
			opts.SetLimit(int64(filter.Limit))
		}
	}

	cursor, err := s.transactions.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*storage.TransactionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	return records, nil
}
