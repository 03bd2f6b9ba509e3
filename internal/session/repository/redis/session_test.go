package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layover-os/internal/model"
	"layover-os/internal/session/repository"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set, skipping redis integration test")
	}
	opt, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opt)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisRepository_CAS(t *testing.T) {
	ctx := context.Background()
	repo := New(newTestClient(t), time.Minute, mockLogger{})
	id := "test-" + uuid.NewString()
	t.Cleanup(func() { repo.Delete(ctx, id) })

	_, found, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	state := model.SessionState{SessionID: id, LocationContext: "SFO"}
	state.Append(model.RoleUser, "hello")

	saved, err := repo.Save(ctx, state, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	_, err = repo.Save(ctx, state, 0)
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	loaded, found, err := repo.Load(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "SFO", loaded.LocationContext)
	assert.Len(t, loaded.Turns, 1)

	loaded.ReferenceMemory = "UA400"
	next, err := repo.Save(ctx, loaded, loaded.Version)
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.Version)
	assert.Equal(t, "UA400", next.ReferenceMemory)
}
