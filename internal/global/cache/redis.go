package cache

import (
	"context"
	"time"

	"sober-october-system/config"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init() {
	cfg := config.Get().Redis
	Client = redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// progressKey 进度报告缓存键，按挑战维度缓存
func progressKey(challengeID string) string {
	return "progress:" + challengeID
}

// GetProgress 读取挑战的进度报告缓存，未命中或 redis 未初始化时返回 false
func GetProgress(ctx context.Context, challengeID string) ([]byte, bool) {
	if Client == nil {
		return nil, false
	}
	raw, err := Client.Get(ctx, progressKey(challengeID)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// SetProgress 写入进度报告缓存
func SetProgress(ctx context.Context, challengeID string, raw []byte, ttl time.Duration) {
	if Client == nil {
		return
	}
	Client.Set(ctx, progressKey(challengeID), raw, ttl)
}

// InvalidateProgress 打卡写入后删除对应挑战的进度缓存
func InvalidateProgress(ctx context.Context, challengeID string) {
	if Client == nil {
		return
	}
	Client.Del(ctx, progressKey(challengeID))
}
