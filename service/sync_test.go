package service

import (
	"Pulse/dao/cache"
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// syncMemStore 内存版 cache.Store, 可注入故障
type syncMemStore struct {
	hashes  map[string]map[string]string
	indexes map[string]map[string]float64
	failure error
}

var _ cache.Store = (*syncMemStore)(nil)

func newSyncMemStore() *syncMemStore {
	return &syncMemStore{
		hashes:  make(map[string]map[string]string),
		indexes: make(map[string]map[string]float64),
	}
}

func (s *syncMemStore) Get(_ context.Context, key string) (map[string]string, error) {
	if s.failure != nil {
		return nil, s.failure
	}
	fields, ok := s.hashes[key]
	if !ok {
		return nil, nil
	}
	return fields, nil
}

func (s *syncMemStore) Insert(_ context.Context, key string, fields map[string]string) error {
	if s.failure != nil {
		return s.failure
	}
	dst := s.hashes[key]
	if dst == nil {
		dst = make(map[string]string)
		s.hashes[key] = dst
	}
	for k, v := range fields {
		dst[k] = v
	}
	return nil
}

func (s *syncMemStore) Update(ctx context.Context, key string, fields map[string]string) error {
	return s.Insert(ctx, key, fields)
}

func (s *syncMemStore) Delete(_ context.Context, key string) error {
	if s.failure != nil {
		return s.failure
	}
	delete(s.hashes, key)
	return nil
}

func (s *syncMemStore) AddToIndex(_ context.Context, index, member string, score float64) error {
	if s.failure != nil {
		return s.failure
	}
	idx := s.indexes[index]
	if idx == nil {
		idx = make(map[string]float64)
		s.indexes[index] = idx
	}
	idx[member] = score
	return nil
}

func (s *syncMemStore) RemoveFromIndex(_ context.Context, index, member string) error {
	if s.failure != nil {
		return s.failure
	}
	if idx, ok := s.indexes[index]; ok {
		delete(idx, member)
	}
	return nil
}

func (s *syncMemStore) ApplyDelta(_ context.Context, index, member string, delta float64) (float64, error) {
	if s.failure != nil {
		return 0, s.failure
	}
	idx := s.indexes[index]
	if idx == nil {
		idx = make(map[string]float64)
		s.indexes[index] = idx
	}
	idx[member] += delta
	return idx[member], nil
}

func (s *syncMemStore) ScanOrdered(_ context.Context, index string, offset, limit int64) ([]cache.Member, error) {
	if s.failure != nil {
		return nil, s.failure
	}
	if limit <= 0 {
		return nil, nil
	}
	idx := s.indexes[index]
	members := make([]cache.Member, 0, len(idx))
	for m, score := range idx {
		members = append(members, cache.Member{Member: m, Score: score})
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].Score > members[j].Score
	})
	if offset >= int64(len(members)) {
		return nil, nil
	}
	end := offset + limit
	if end > int64(len(members)) {
		end = int64(len(members))
	}
	return members[offset:end], nil
}

func newSyncService(store cache.Store) *CacheSyncService {
	return &CacheSyncService{
		Popularity: cache.NewPopularityStorage(store),
		Feed:       cache.NewFeedStorage(store),
	}
}

func TestCacheSync_EventsReachBothCaches(t *testing.T) {
	store := newSyncMemStore()
	sync := newSyncService(store)
	ctx := context.Background()
	snap := cache.PostSnapshot{Content: "hi", AuthorID: 1, AuthorUsername: "alice"}
	createdAt := time.Unix(1700000000, 0)

	sync.PostCreated(ctx, 1, 10, createdAt, snap)
	sync.PostLiked(ctx, 10, snap)

	feed, err := sync.Feed.FeedFor(ctx, 1, 0, 10)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 1 || feed[0].PostID != 10 {
		t.Fatalf("post missing from feed: %+v", feed)
	}

	top, err := sync.Popularity.TopN(ctx, 10)
	if err != nil {
		t.Fatalf("TopN: %v", err)
	}
	if len(top) != 1 || top[0].PostID != 10 || top[0].Score != 1 {
		t.Fatalf("post missing from popularity board: %+v", top)
	}

	sync.PostUnliked(ctx, 10)
	sync.PostDeleted(ctx, 1, 10)

	feed, _ = sync.Feed.FeedFor(ctx, 1, 0, 10)
	top, _ = sync.Popularity.TopN(ctx, 10)
	if len(feed) != 0 || len(top) != 0 {
		t.Fatalf("delete must clear both caches: feed=%+v top=%+v", feed, top)
	}
}

func TestCacheSync_UpdateRefreshesFeedSnapshot(t *testing.T) {
	store := newSyncMemStore()
	sync := newSyncService(store)
	ctx := context.Background()

	sync.PostCreated(ctx, 1, 10, time.Unix(1700000000, 0),
		cache.PostSnapshot{Content: "before", AuthorID: 1, AuthorUsername: "alice"})
	sync.PostUpdated(ctx, 1, 10,
		cache.PostSnapshot{Content: "after", AuthorID: 1, AuthorUsername: "alice"})

	feed, err := sync.Feed.FeedFor(ctx, 1, 0, 10)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(feed) != 1 || feed[0].Snapshot.Content != "after" {
		t.Fatalf("snapshot not refreshed: %+v", feed)
	}
}

// 缓存故障只记日志, 绝不冒泡到请求路径
func TestCacheSync_FailuresNeverEscape(t *testing.T) {
	store := newSyncMemStore()
	store.failure = errors.New("redis down")
	sync := newSyncService(store)
	ctx := context.Background()
	snap := cache.PostSnapshot{Content: "hi", AuthorID: 1, AuthorUsername: "alice"}

	// 所有事件都不应 panic, 也没有错误返回值可供冒泡
	sync.PostCreated(ctx, 1, 10, time.Unix(1700000000, 0), snap)
	sync.PostUpdated(ctx, 1, 10, snap)
	sync.PostLiked(ctx, 10, snap)
	sync.PostUnliked(ctx, 10)
	sync.PostDeleted(ctx, 1, 10)
}

// 条目缺失的更新按漂移记录, 与其他故障同样被吞掉
func TestCacheSync_UpdateOnMissingEntrySwallowed(t *testing.T) {
	store := newSyncMemStore()
	sync := newSyncService(store)

	sync.PostUpdated(context.Background(), 1, 999,
		cache.PostSnapshot{Content: "ghost", AuthorID: 1, AuthorUsername: "alice"})
}
