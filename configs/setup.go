package configs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	connectOnce sync.Once
	client      *mongo.Client
)

// ConnectDB dials MongoDB exactly once and returns the shared client. The
// connection is established lazily so importing a package that holds
// collections does not require a running database.
func ConnectDB() *mongo.Client {
	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
		if err != nil {
			log.Fatal(err)
		}

		if err = c.Ping(ctx, nil); err != nil {
			log.Fatal(err)
		}

		fmt.Println("Connected to MongoDB")
		client = c
	})
	return client
}

func GetCollection(collectionName string) *mongo.Collection {
	return ConnectDB().Database(EnvDBName()).Collection(collectionName)
}
