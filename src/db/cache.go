package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked in concurrent sets so that all caches of a given
// type can be cleared together when a bulk write lands.
var (
	Cache                *ristretto.Cache
	TransactionCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	ReviewCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

// Transaction Cache Functions
func SetTransactionCache(cacheKey string, value interface{}) {
	TransactionCacheKeys.Lock()
	TransactionCacheKeys.m[cacheKey] = struct{}{}
	TransactionCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelTransactionCache(cacheKey string) {
	TransactionCacheKeys.Lock()
	delete(TransactionCacheKeys.m, cacheKey)
	TransactionCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

// Review Cache Functions
func SetReviewCache(cacheKey string, value interface{}) {
	ReviewCacheKeys.Lock()
	ReviewCacheKeys.m[cacheKey] = struct{}{}
	ReviewCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelReviewCache(cacheKey string) {
	ReviewCacheKeys.Lock()
	delete(ReviewCacheKeys.m, cacheKey)
	ReviewCacheKeys.Unlock()
	Cache.Del(cacheKey)
}
