package suite

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-board/internal/repository/storage"
)

const (
	containerTTL = 120
	startTimeout = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T

	Storage *redis.Client
}

// New - starts a throwaway redis container for the test. The test is skipped in short mode or
// when docker is not reachable.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not construct docker pool: %v", err)
	}

	if err = pool.Client.Ping(); err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	redisStorage := startRedis(ctx, t, pool)

	if err = redisStorage.Connection.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Storage: redisStorage.Connection,
	}
}

// startRedis - runs the container and connects through the application's storage bootstrap.
func startRedis(ctx context.Context, t *testing.T, pool *dockertest.Pool) *storage.RedisStorage {
	t.Helper()

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge redis container: %v", err)
		}
	})

	// hard kill if cleanup never runs
	_ = resource.Expire(containerTTL)

	pool.MaxWait = startTimeout

	var redisStorage *storage.RedisStorage
	if err = pool.Retry(func() error {
		var connErr error
		redisStorage, connErr = storage.NewRedisStorage(ctx, resource.GetHostPort(redisPort))
		return connErr
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", err)
	}

	t.Cleanup(func() {
		if err := redisStorage.Close(); err != nil {
			t.Errorf("could not close redis storage: %v", err)
		}
	})

	return redisStorage
}
