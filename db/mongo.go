package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens the MongoDB client and returns the application database.
// The handle is constructed once at startup and passed down to every
// handler factory; nothing else in the codebase touches connection state.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Printf("✅ Connected to MongoDB (%s)", dbName)
	return client.Database(dbName), nil
}

// EnsureIndexes creates the unique indexes the data model relies on:
// user email, coupon code, one cart/wishlist per user, post slug.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	type uniqueIndex struct {
		collection string
		key        string
	}
	for _, s := range []uniqueIndex{
		{"users", "email"},
		{"coupons", "code"},
		{"carts", "userId"},
		{"wishlists", "userId"},
		{"posts", "slug"},
	} {
		_, err := database.Collection(s.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: s.key, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}

	log.Println("✅ Database indexes ready")
	return nil
}
