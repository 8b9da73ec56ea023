package testutils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"main/utils"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// envMutex protects environment variable access across parallel tests.
var envMutex sync.Mutex

// SetupTestEnvironment sets up the test environment variables.
func SetupTestEnvironment() {
	// Find and load the main .env file if one exists
	rootDir := findProjectRoot()
	if envPath := filepath.Join(rootDir, ".env"); rootDir != "" {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded .env file from: %s", envPath)
		}
	}

	envMutex.Lock()
	defer envMutex.Unlock()

	os.Setenv("GO_ENV", "test")
	os.Setenv("MONGO_DB", "portfolio_test")
	os.Setenv("MONGO_DB_TEST", "portfolio_test")

	if os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test-secret-key")
	}
	utils.JWTSecretKey = os.Getenv("JWT_SECRET_KEY")

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	os.Setenv("TEST_MONGO_URI", mongoURI)
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// SetupTestDB connects to the test MongoDB instance and returns the
// client plus a cleanup function that drops the test database.
func SetupTestDB(t *testing.T) (*mongo.Client, func()) {
	if os.Getenv("GO_ENV") != "test" {
		SetupTestEnvironment()
	}

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Fatal("TEST_MONGO_URI environment variable not set")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100)).
		SetMinPoolSize(utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10)).
		SetMaxConnIdleTime(time.Duration(utils.GetEnvAsInt("MONGO_MAX_CONN_IDLE_TIME", 60)) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		t.Fatalf("Failed to ping MongoDB: %v", err)
	}

	cleanup := func() {
		t.Helper()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		dbName := os.Getenv("MONGO_DB_TEST")
		if dbName != "" {
			if err := client.Database(dbName).Drop(ctx); err != nil {
				t.Logf("Warning: Failed to drop test database %s: %v", dbName, err)
			}
		}

		if err := client.Disconnect(ctx); err != nil {
			t.Logf("Warning: Failed to disconnect: %v", err)
		}
	}

	return client, cleanup
}
