package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	// 管理器會寫日誌，測試裡換成 no-op
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerGetSet(t *testing.T) {
	m := NewManager(testConfig(10, time.Hour))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()

	_, err := m.Get(ctx, "missing")
	require.Error(t, err)

	require.NoError(t, m.Set(ctx, "k", "v"))

	value, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(testConfig(10, 10*time.Millisecond))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "k", "v"))

	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "k")
	require.Error(t, err)
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(testConfig(2, time.Hour))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "k1", "v1"))
	require.NoError(t, m.Set(ctx, "k2", "v2"))

	// 訪問 k1，讓 k2 成為最少使用
	_, err := m.Get(ctx, "k1")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "k3", "v3"))

	_, err = m.Get(ctx, "k2")
	assert.Error(t, err)

	_, err = m.Get(ctx, "k1")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "k3")
	assert.NoError(t, err)
}

func TestManagerDisabled(t *testing.T) {
	cfg := testConfig(10, time.Hour)
	cfg.Cache.Enabled = false
	assert.Nil(t, NewManager(cfg))
}

func TestManagerStats(t *testing.T) {
	m := NewManager(testConfig(10, time.Hour))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "k", "v"))
	_, _ = m.Get(ctx, "k")
	_, _ = m.Get(ctx, "missing")

	stats := m.Stats()
	assert.Equal(t, "memory", stats["backend"])
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.InDelta(t, 0.5, stats["hit_ratio"].(float64), 1e-9)
}

func TestNewBackendSelection(t *testing.T) {
	// 停用時回傳 nil 緩存、不報錯
	cfg := testConfig(10, time.Hour)
	cfg.Cache.Enabled = false
	c, err := New(cfg)
	require.NoError(t, err)
	assert.Nil(t, c)

	// memory 後端
	cfg = testConfig(10, time.Hour)
	c, err = New(cfg)
	require.NoError(t, err)
	require.NotNil(t, c)
	_ = c.Close()

	// 未知後端
	cfg = testConfig(10, time.Hour)
	cfg.Cache.Backend = "memcached"
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	k1 := Key("parse", "600g Flour")
	k2 := Key("parse", "600g Flour")
	k3 := Key("parse", "500g Flour")

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Contains(t, k1, "parse:")
}
