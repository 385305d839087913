package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFeed_CreateThenRead(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	createdAt := time.Unix(1700000000, 0)
	if err := f.OnPostCreated(ctx, 1, 10, createdAt, testSnapshot(1, "first post")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}

	entries, err := f.FeedFor(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.AuthorID != 1 || e.PostID != 10 || e.CreatedAt != createdAt.Unix() {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Snapshot.Content != "first post" {
		t.Fatalf("snapshot mismatch: %+v", e.Snapshot)
	}
}

func TestFeed_ReverseChronologicalOrder(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for i, postID := range []uint64{10, 11, 12} {
		err := f.OnPostCreated(ctx, 1, postID, base.Add(time.Duration(i)*time.Minute), testSnapshot(1, "post"))
		if err != nil {
			t.Fatalf("OnPostCreated: %v", err)
		}
	}

	entries, err := f.FeedFor(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	want := []uint64{12, 11, 10}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].PostID != id {
			t.Fatalf("position %d: want post %d, got %d", i, id, entries[i].PostID)
		}
	}
}

func TestFeed_Pagination(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	for i := uint64(1); i <= 5; i++ {
		err := f.OnPostCreated(ctx, 1, i, base.Add(time.Duration(i)*time.Minute), testSnapshot(1, "post"))
		if err != nil {
			t.Fatalf("OnPostCreated: %v", err)
		}
	}

	entries, err := f.FeedFor(ctx, 1, 2, 2)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(entries) != 2 || entries[0].PostID != 3 || entries[1].PostID != 2 {
		t.Fatalf("unexpected page: %+v", entries)
	}

	// 越过末尾返回空页
	entries, err = f.FeedFor(ctx, 1, 10, 2)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty page, got %d entries", len(entries))
	}

	// limit <= 0 返回空页, 而不是整个信息流
	for _, limit := range []int64{0, -1} {
		entries, err = f.FeedFor(ctx, 1, 0, limit)
		if err != nil {
			t.Fatalf("FeedFor(limit=%d): %v", limit, err)
		}
		if len(entries) != 0 {
			t.Fatalf("FeedFor(limit=%d) must return nothing, got %d entries", limit, len(entries))
		}
	}
}

func TestFeed_UpdateRefreshesSnapshotInPlace(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	createdAt := time.Unix(1700000000, 0)
	if err := f.OnPostCreated(ctx, 1, 10, createdAt, testSnapshot(1, "old")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}
	if err := f.OnPostCreated(ctx, 1, 11, createdAt.Add(time.Minute), testSnapshot(1, "newer")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}

	if err := f.OnPostUpdated(ctx, 1, 10, testSnapshot(1, "edited")); err != nil {
		t.Fatalf("OnPostUpdated: %v", err)
	}

	entries, err := f.FeedFor(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	// 编辑不重排: 11 仍在 10 前面
	if len(entries) != 2 || entries[0].PostID != 11 || entries[1].PostID != 10 {
		t.Fatalf("edit must not reorder feed: %+v", entries)
	}
	if entries[1].Snapshot.Content != "edited" {
		t.Fatalf("snapshot not refreshed: %+v", entries[1].Snapshot)
	}
	if entries[1].CreatedAt != createdAt.Unix() {
		t.Fatalf("created_at must survive edit: %+v", entries[1])
	}
}

func TestFeed_UpdateMissingEntry(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	err := f.OnPostUpdated(ctx, 1, 999, testSnapshot(1, "ghost"))
	if !errors.Is(err, ErrEntryMissing) {
		t.Fatalf("want ErrEntryMissing, got %v", err)
	}
}

func TestFeed_DeleteIsIdempotent(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	if err := f.OnPostCreated(ctx, 1, 10, time.Unix(1700000000, 0), testSnapshot(1, "bye")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := f.OnPostDeleted(ctx, 1, 10); err != nil {
			t.Fatalf("OnPostDeleted #%d: %v", i, err)
		}
	}

	entries, err := f.FeedFor(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("deleted post leaked into feed: %+v", entries)
	}
	if store.hashExists("feed:entry:1:10") {
		t.Fatal("entry hash must be removed")
	}
}

func TestFeed_AuthorsAreIsolated(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	createdAt := time.Unix(1700000000, 0)
	if err := f.OnPostCreated(ctx, 1, 10, createdAt, testSnapshot(1, "alice post")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}
	if err := f.OnPostCreated(ctx, 2, 20, createdAt, testSnapshot(2, "bob post")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}

	entries, err := f.FeedFor(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(entries) != 1 || entries[0].PostID != 10 {
		t.Fatalf("feed must only contain own posts: %+v", entries)
	}
}

func TestFeed_SkipsDanglingIndexMember(t *testing.T) {
	store := newMemStore()
	f := NewFeedStorage(store)
	ctx := context.Background()

	createdAt := time.Unix(1700000000, 0)
	if err := f.OnPostCreated(ctx, 1, 10, createdAt, testSnapshot(1, "ok")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}
	if err := f.OnPostCreated(ctx, 1, 11, createdAt.Add(time.Minute), testSnapshot(1, "dangling")); err != nil {
		t.Fatalf("OnPostCreated: %v", err)
	}
	if err := store.Delete(ctx, "feed:entry:1:11"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	entries, err := f.FeedFor(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("FeedFor: %v", err)
	}
	if len(entries) != 1 || entries[0].PostID != 10 {
		t.Fatalf("dangling member must be skipped, got %+v", entries)
	}
}
