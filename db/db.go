package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	MenuCollection     *mongo.Collection
	OrdersCollection   *mongo.Collection
	SettingsCollection *mongo.Collection
	Client             *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("EATKWIK_DB")
	if dbName == "" {
		dbName = "eatkwikdb"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	MenuCollection = Client.Database(dbName).Collection("menuitems")
	OrdersCollection = Client.Database(dbName).Collection("orders")
	SettingsCollection = Client.Database(dbName).Collection("settings")
}
