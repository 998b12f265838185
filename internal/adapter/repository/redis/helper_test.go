package redis

import (
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
)

// newTestRedisClient starts an in-process server and dials it through a
// redis:// URL, the same way the server's REDIS_URL is parsed. Both are
// closed when the test ends.
func newTestRedisClient(t *testing.T) (*redislib.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	opts, err := redislib.ParseURL("redis://" + mr.Addr() + "/0")
	if err != nil {
		t.Fatalf("failed to parse miniredis url: %v", err)
	}

	client := redislib.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
