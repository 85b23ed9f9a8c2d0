package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "mealgrid/internal/adapters/redis"
	"mealgrid/internal/domain"
)

func newCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	if err := c.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	var miss domain.SearchPage
	ok, err := c.Get(ctx, "search:g:k", &miss)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	in := domain.SearchPage{Active: true, Count: 1, Generation: "g", Meals: []domain.MealView{
		{Meal: domain.Meal{ID: 999, Name: "Shanghai Beef Noodle Soup"}, PriceLabel: "$10-$20", Pinned: true},
	}}
	if err := c.Set(ctx, "search:g:k", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("search:g:k"); ttl != 60*time.Second {
		t.Fatalf("ttl: %v", ttl)
	}

	var out domain.SearchPage
	ok, err = c.Get(ctx, "search:g:k", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if out.Count != 1 || !out.Meals[0].Pinned || out.Meals[0].Name != "Shanghai Beef Noodle Soup" {
		t.Fatalf("unexpected page: %+v", out)
	}

	if err := c.Del(ctx, "search:g:k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if mr.Exists("search:g:k") {
		t.Fatalf("key still present after Del")
	}
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newCache(t)
	ctx := context.Background()

	_ = c.Set(ctx, "restaurant:g:1", domain.RestaurantView{PriceLabel: "$10-$20"}, 5)
	mr.FastForward(6 * time.Second)

	var rv domain.RestaurantView
	if ok, _ := c.Get(ctx, "restaurant:g:1", &rv); ok {
		t.Fatalf("expected expired entry to miss")
	}
}

func TestCache_CorruptEntry(t *testing.T) {
	c, mr := newCache(t)
	_ = mr.Set("search:g:bad", "{not json")

	var page domain.SearchPage
	ok, err := c.Get(context.Background(), "search:g:bad", &page)
	if ok || err == nil {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestCache_Unreachable(t *testing.T) {
	c, mr := newCache(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Ping(ctx); err == nil {
		t.Fatalf("expected ping error after server close")
	}
}
