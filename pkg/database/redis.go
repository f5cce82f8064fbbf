package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"pattern_edu_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis 建立 redis 连接。这里只承载两类小键：
// 注销令牌黑名单（auth:deny:*）和模式讲义缓存（content:pattern:*），
// 连接池不需要开太大
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
