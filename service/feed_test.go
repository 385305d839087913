package service

import (
	"Pulse/dao/cache"
	"context"
	"testing"
	"time"
)

func TestFeedService_Timeline(t *testing.T) {
	store := newSyncMemStore()
	feed := cache.NewFeedStorage(store)
	svc := &FeedService{
		Popularity: cache.NewPopularityStorage(store),
		Feed:       feed,
	}
	ctx := context.Background()

	base := time.Unix(1700000000, 0)
	snap := cache.PostSnapshot{Content: "hello", ImageURL: "img", AuthorID: 1, AuthorUsername: "alice"}
	for i, postID := range []uint64{10, 11} {
		if err := feed.OnPostCreated(ctx, 1, postID, base.Add(time.Duration(i)*time.Minute), snap); err != nil {
			t.Fatalf("OnPostCreated: %v", err)
		}
	}

	items, err := svc.Timeline(ctx, 1, 0, 20)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(items) != 2 || items[0].PostID != 11 || items[1].PostID != 10 {
		t.Fatalf("unexpected timeline: %+v", items)
	}
	if items[0].AuthorUsername != "alice" || items[0].Content != "hello" {
		t.Fatalf("snapshot fields not mapped: %+v", items[0])
	}

	// limit <= 0 回落到默认页大小
	items, err = svc.Timeline(ctx, 1, 0, 0)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("default limit should return all entries, got %d", len(items))
	}
}

func TestFeedService_PopularPosts(t *testing.T) {
	store := newSyncMemStore()
	pop := cache.NewPopularityStorage(store)
	svc := &FeedService{
		Popularity: pop,
		Feed:       cache.NewFeedStorage(store),
	}
	ctx := context.Background()

	snap := cache.PostSnapshot{Content: "hot", AuthorID: 2, AuthorUsername: "bob"}
	for i := 0; i < 3; i++ {
		if err := pop.OnPostLiked(ctx, 7, snap); err != nil {
			t.Fatalf("OnPostLiked: %v", err)
		}
	}
	if err := pop.OnPostLiked(ctx, 8, snap); err != nil {
		t.Fatalf("OnPostLiked: %v", err)
	}

	items, err := svc.PopularPosts(ctx, 10)
	if err != nil {
		t.Fatalf("PopularPosts: %v", err)
	}
	if len(items) != 2 || items[0].PostID != 7 || items[0].Score != 3 {
		t.Fatalf("unexpected board: %+v", items)
	}
	if items[0].AuthorUsername != "bob" {
		t.Fatalf("snapshot fields not mapped: %+v", items[0])
	}
}
