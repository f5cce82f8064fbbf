package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"pattern_edu_backend/internal/catalog"
	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"
	"pattern_edu_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const patternContentKeyPrefix = "content:pattern:"

// ContentService 读取模式讲义（markdown 正文 + 示例代码），带 redis 缓存。
// 讲义是构建期生成的静态文件，缓存失效只影响首次读取延迟
type ContentService struct {
	Cfg   *config.Config
	Redis *redis.Client
}

func NewContentService(cfg *config.Config, rdb *redis.Client) *ContentService {
	return &ContentService{Cfg: cfg, Redis: rdb}
}

// GetPatternDetail 目录条目加讲义正文。目录里没有的 slug 返回 ErrPatternNotFound
func (s *ContentService) GetPatternDetail(ctx context.Context, patternID string) (*model.PatternDetail, error) {
	p, ok := catalog.ByID(patternID)
	if !ok {
		return nil, util.ErrPatternNotFound
	}

	content, err := s.loadContent(ctx, patternID)
	if err != nil {
		return nil, err
	}

	return &model.PatternDetail{Pattern: p, Content: content}, nil
}

func (s *ContentService) loadContent(ctx context.Context, patternID string) (string, error) {
	key := patternContentKeyPrefix + patternID

	if s.cacheTTL() > 0 {
		val, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			return val, nil
		}
		if !errors.Is(err, redis.Nil) {
			// 缓存故障降级为直接读盘
			logger.Log.Warn("pattern content cache read failed", zap.Error(err))
		}
	}

	path := filepath.Join(s.Cfg.Content.PatternDir, patternID+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", util.ErrPatternNotFound
		}
		return "", err
	}

	content := string(data)
	if ttl := s.cacheTTL(); ttl > 0 {
		if err := s.Redis.Set(ctx, key, content, ttl).Err(); err != nil {
			logger.Log.Warn("pattern content cache write failed", zap.Error(err))
		}
	}

	return content, nil
}

func (s *ContentService) cacheTTL() time.Duration {
	return time.Duration(s.Cfg.Content.CacheMinutes) * time.Minute
}
