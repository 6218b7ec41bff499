package mongo

import (
	"context"
	"testing"
	"time"
)

func TestConfig_ClientOptions(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017", Database: "serviceDB", MaxPool: 25}.clientOptions()

	if opts.AppName == nil || *opts.AppName != appName {
		t.Fatalf("expected app name %q, got %v", appName, opts.AppName)
	}
	if opts.MaxPoolSize == nil || *opts.MaxPoolSize != 25 {
		t.Fatalf("expected max pool 25, got %v", opts.MaxPoolSize)
	}
	if opts.Timeout == nil || *opts.Timeout != connectTimeout {
		t.Fatalf("expected default timeout %s, got %v", connectTimeout, opts.Timeout)
	}
	if opts.ServerAPIOptions == nil || opts.ServerAPIOptions.Strict == nil || !*opts.ServerAPIOptions.Strict {
		t.Fatal("expected strict stable server API")
	}
}

func TestConfig_ClientOptions_DriverDefaults(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017", Timeout: 3 * time.Second}.clientOptions()

	if opts.MaxPoolSize != nil {
		t.Fatalf("expected driver default pool size, got %d", *opts.MaxPoolSize)
	}
	if *opts.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", *opts.Timeout)
	}
}

func TestConnect_RequiresDatabase(t *testing.T) {
	if _, _, err := Connect(context.Background(), Config{URI: "mongodb://localhost:27017"}); err == nil {
		t.Fatal("expected error for empty database name")
	}
}
