package redis

import (
	"context"
	"testing"
)

func TestConfig_Options(t *testing.T) {
	opts := Config{Addr: "cache:6379", Password: "pw", DB: 2, PoolSize: 8}.options()

	if opts.Addr != "cache:6379" || opts.Password != "pw" || opts.DB != 2 {
		t.Fatalf("connection fields not carried over: %+v", opts)
	}
	if opts.PoolSize != 8 {
		t.Fatalf("expected pool size 8, got %d", opts.PoolSize)
	}
	if opts.ClientName != "empuls-server" {
		t.Fatalf("unexpected client name %q", opts.ClientName)
	}
}

func TestConnect_RequiresAddr(t *testing.T) {
	if _, err := Connect(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty address")
	}
}
