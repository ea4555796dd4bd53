package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Settings struct {
	MongoURL    string
	DBName      string
	Port        string
	CORSOrigins []string
}

// Load reads process settings from the environment. MONGO_URL and DB_NAME
// are mandatory; PORT defaults to 8080 and CORS_ORIGINS to "*".
func Load() (Settings, error) {
	s := Settings{
		MongoURL: os.Getenv("MONGO_URL"),
		DBName:   os.Getenv("DB_NAME"),
		Port:     os.Getenv("PORT"),
	}
	if s.MongoURL == "" {
		return Settings{}, fmt.Errorf("MONGO_URL not set in environment")
	}
	if s.DBName == "" {
		return Settings{}, fmt.Errorf("DB_NAME not set in environment")
	}
	if s.Port == "" {
		s.Port = "8080"
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			s.CORSOrigins = append(s.CORSOrigins, o)
		}
	}
	return s, nil
}

// ConnectDB opens a Mongo client and verifies the connection with a ping.
func ConnectDB(uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}
	return client, nil
}
