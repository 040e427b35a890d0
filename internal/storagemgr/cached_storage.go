package storagemgr

import (
	"github.com/VictoriaMetrics/fastcache"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/axiomesh/token-ledger/pkg/storage/kv"
)

var (
	kvCacheHitCount  int
	kvCacheMissCount int

	kvCacheHitCounter = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "token_ledger",
		Subsystem: "storage",
		Name:      "kv_cache_hit_counter",
		Help:      "The number of kv cache hits since the last executed call",
	})

	kvCacheMissCounter = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "token_ledger",
		Subsystem: "storage",
		Name:      "kv_cache_miss_counter",
		Help:      "The number of kv cache misses since the last executed call",
	})
)

func init() {
	prometheus.MustRegister(kvCacheHitCounter)
	prometheus.MustRegister(kvCacheMissCounter)
}

// ExportCachedStorageMetrics publishes the hit/miss counters accumulated since
// the last reset. The state ledger exports on every commit, so the gauges read
// as per-call cache effectiveness.
func ExportCachedStorageMetrics() {
	kvCacheHitCounter.Set(float64(kvCacheHitCount))
	kvCacheMissCounter.Set(float64(kvCacheMissCount))
}

// ResetCachedStorageMetrics starts a fresh counting window. The state ledger
// calls it when a new call context begins.
func ResetCachedStorageMetrics() {
	kvCacheHitCount = 0
	kvCacheMissCount = 0
}

// cachedStorage layers an in-memory fastcache over a persistent kv.Storage.
// Reads fill the cache, writes update both sides, so a value read twice in a
// row never touches the backend twice.
type cachedStorage struct {
	kv.Storage
	cache *fastcache.Cache
}

func NewCachedStorage(s kv.Storage, megabytesLimit int) kv.Storage {
	if megabytesLimit <= 0 {
		megabytesLimit = 128
	}
	return &cachedStorage{
		Storage: s,
		cache:   fastcache.New(megabytesLimit * 1024 * 1024),
	}
}

func (c *cachedStorage) Get(key []byte) []byte {
	if value, ok := c.cache.HasGet(nil, key); ok {
		kvCacheHitCount++
		return value
	}
	kvCacheMissCount++
	v := c.Storage.Get(key)
	if v != nil {
		c.cache.Set(key, v)
	}
	return v
}

func (c *cachedStorage) Has(key []byte) bool {
	if c.cache.Has(key) {
		kvCacheHitCount++
		return true
	}
	kvCacheMissCount++
	return c.Storage.Has(key)
}

func (c *cachedStorage) Put(key, value []byte) {
	if len(value) == 0 {
		value = nil
	}
	c.Storage.Put(key, value)
	c.cache.Set(key, value)
}

func (c *cachedStorage) Delete(key []byte) {
	c.cache.Del(key)
	c.Storage.Delete(key)
}

func (c *cachedStorage) Close() error {
	c.cache.Reset()
	return c.Storage.Close()
}

func (c *cachedStorage) NewBatch() kv.Batch {
	return &cachedBatch{
		Batch:   c.Storage.NewBatch(),
		cache:   c.cache,
		pending: make(map[string][]byte),
	}
}

// cachedBatch defers cache updates until Commit so that a half-written batch
// never becomes visible through the cache.
type cachedBatch struct {
	kv.Batch
	cache   *fastcache.Cache
	pending map[string][]byte
}

func (b *cachedBatch) Put(key, value []byte) {
	if len(value) == 0 {
		b.pending[string(key)] = nil
		b.Batch.Delete(key)
		return
	}
	b.pending[string(key)] = value
	b.Batch.Put(key, value)
}

func (b *cachedBatch) Delete(key []byte) {
	b.pending[string(key)] = nil
	b.Batch.Delete(key)
}

func (b *cachedBatch) Commit() {
	b.Batch.Commit()
	for k, v := range b.pending {
		if v == nil {
			b.cache.Del([]byte(k))
		} else {
			b.cache.Set([]byte(k), v)
		}
	}
}

func (b *cachedBatch) Reset() {
	b.Batch.Reset()
	b.pending = make(map[string][]byte)
}
