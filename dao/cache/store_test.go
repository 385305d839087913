package cache

import (
	"context"
	"sort"
	"sync"
)

// memStore 内存版 Store, 测试用, 语义对齐 RedisStore
type memStore struct {
	mu      sync.Mutex
	hashes  map[string]map[string]string
	indexes map[string]map[string]float64
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		hashes:  make(map[string]map[string]string),
		indexes: make(map[string]map[string]float64),
	}
}

func (s *memStore) Get(_ context.Context, key string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fields, ok := s.hashes[key]
	if !ok {
		return nil, nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}

func (s *memStore) Insert(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	dst := s.hashes[key]
	if dst == nil {
		dst = make(map[string]string, len(fields))
		s.hashes[key] = dst
	}
	for k, v := range fields {
		dst[k] = v
	}
	return nil
}

func (s *memStore) Update(ctx context.Context, key string, fields map[string]string) error {
	return s.Insert(ctx, key, fields)
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.hashes, key)
	return nil
}

func (s *memStore) AddToIndex(_ context.Context, index, member string, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexes[index]
	if idx == nil {
		idx = make(map[string]float64)
		s.indexes[index] = idx
	}
	idx[member] = score
	return nil
}

func (s *memStore) RemoveFromIndex(_ context.Context, index, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx, ok := s.indexes[index]; ok {
		delete(idx, member)
	}
	return nil
}

func (s *memStore) ApplyDelta(_ context.Context, index, member string, delta float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexes[index]
	if idx == nil {
		idx = make(map[string]float64)
		s.indexes[index] = idx
	}
	idx[member] += delta
	return idx[member], nil
}

func (s *memStore) ScanOrdered(_ context.Context, index string, offset, limit int64) ([]Member, error) {
	if limit <= 0 {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexes[index]
	members := make([]Member, 0, len(idx))
	for m, score := range idx {
		members = append(members, Member{Member: m, Score: score})
	}
	// 分值倒序, 同分按成员名倒序, 与 ZREVRANGE 一致
	sort.Slice(members, func(i, j int) bool {
		if members[i].Score != members[j].Score {
			return members[i].Score > members[j].Score
		}
		return members[i].Member > members[j].Member
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

func (s *memStore) indexScore(index, member string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.indexes[index]
	if !ok {
		return 0, false
	}
	score, ok := idx[member]
	return score, ok
}

func (s *memStore) hashExists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.hashes[key]
	return ok
}
