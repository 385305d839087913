package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Member 有序索引中的成员及其分值
type Member struct {
	Member string
	Score  float64
}

// Store 二级存储客户端抽象
// 只依赖单键原子的读写原语和按分值有序的范围扫描, 不提供跨键事务
// 每次调用独立获取/释放连接, 不跨请求持有
type Store interface {
	// Get 读取键对应的字段集合, 键不存在时返回 nil
	Get(ctx context.Context, key string) (map[string]string, error)
	// Insert 写入完整字段集合
	Insert(ctx context.Context, key string, fields map[string]string) error
	// Update 覆盖部分字段
	Update(ctx context.Context, key string, fields map[string]string) error
	// Delete 删除键, 键不存在时为空操作
	Delete(ctx context.Context, key string) error
	// AddToIndex 以给定分值将成员写入有序索引
	AddToIndex(ctx context.Context, index, member string, score float64) error
	// RemoveFromIndex 从有序索引移除成员
	RemoveFromIndex(ctx context.Context, index, member string) error
	// ApplyDelta 原子地增减索引成员的分值并返回新分值
	// 成员不存在时按 0 起算
	ApplyDelta(ctx context.Context, index, member string, delta float64) (float64, error)
	// ScanOrdered 按分值从高到低扫描索引, limit <= 0 时返回空
	ScanOrdered(ctx context.Context, index string, offset, limit int64) ([]Member, error)
}

var _ Store = (*RedisStore)(nil)

// RedisStore 基于 Redis 的二级存储实现
// 条目为 hash, 排序索引为 zset, 所有原语都是单键原子的
type RedisStore struct {
	redis *redis.Client
}

func NewStore(rds *redis.Client) *RedisStore {
	return &RedisStore{redis: rds}
}

func (s *RedisStore) Get(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

func (s *RedisStore) Insert(ctx context.Context, key string, fields map[string]string) error {
	return s.redis.HSet(ctx, key, fields).Err()
}

func (s *RedisStore) Update(ctx context.Context, key string, fields map[string]string) error {
	return s.redis.HSet(ctx, key, fields).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.redis.Del(ctx, key).Err()
}

func (s *RedisStore) AddToIndex(ctx context.Context, index, member string, score float64) error {
	return s.redis.ZAdd(ctx, index, redis.Z{Score: score, Member: member}).Err()
}

func (s *RedisStore) RemoveFromIndex(ctx context.Context, index, member string) error {
	return s.redis.ZRem(ctx, index, member).Err()
}

// ApplyDelta ZINCRBY 天然原子, 并发加减不会丢失更新
func (s *RedisStore) ApplyDelta(ctx context.Context, index, member string, delta float64) (float64, error) {
	return s.redis.ZIncrBy(ctx, index, delta, member).Result()
}

func (s *RedisStore) ScanOrdered(ctx context.Context, index string, offset, limit int64) ([]Member, error) {
	// ZREVRANGE 的 stop=-1 意为扫到末尾, limit 0 不能落到这个分支
	if limit <= 0 {
		return nil, nil
	}
	items, err := s.redis.ZRevRangeWithScores(ctx, index, offset, offset+limit-1).Result()
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(items))
	for _, item := range items {
		member, ok := item.Member.(string)
		if !ok {
			continue
		}
		members = append(members, Member{Member: member, Score: item.Score})
	}
	return members, nil
}
