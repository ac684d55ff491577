package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-scaler/internal/infrastructure/config"
)

// Cache 響應緩存介面，memory 與 redis 後端共用
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Stats() map[string]interface{}
	Close() error
}

// New 依設定建立緩存後端，緩存停用時回傳 nil
func New(cfg *config.Config) (Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		return NewRedisCache(&cfg.Cache)
	case "memory", "":
		return NewManager(cfg), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Cache.Backend)
	}
}

// Key 以 SHA-256 產生緩存鍵
func Key(prefix, data string) string {
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}
