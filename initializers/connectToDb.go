package initializers

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectToDB opens the Mongo connection and returns the client and database
// handles. The caller owns the lifecycle: connect at startup, disconnect on
// shutdown.
func ConnectToDB(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "product_catalog"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, err
	}

	log.Println("Connected to MongoDB.")
	return client, client.Database(dbName), nil
}
