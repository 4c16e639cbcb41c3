package client

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// InitMongoClient connects to the legacy entity store.
func InitMongoClient(url, database string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mc, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		log.Fatal("failed to connect to mongo:", err)
	}
	if err := mc.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("failed to ping mongo:", err)
	}

	return mc.Database(database)
}
