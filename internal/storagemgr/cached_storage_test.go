package storagemgr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/storage/kv"
)

func TestCachedStorageReadThrough(t *testing.T) {
	backend := kv.NewMemory()
	c := NewCachedStorage(backend, 10)

	// seed the backend directly, bypassing the cache
	backend.Put([]byte("seeded"), []byte("from-backend"))

	kvCacheHitCount = 0
	kvCacheMissCount = 0

	require.Equal(t, []byte("from-backend"), c.Get([]byte("seeded")))
	require.Equal(t, 0, kvCacheHitCount)
	require.Equal(t, 1, kvCacheMissCount)

	// second read is served from the cache
	require.Equal(t, []byte("from-backend"), c.Get([]byte("seeded")))
	require.Equal(t, 1, kvCacheHitCount)
	require.Equal(t, 1, kvCacheMissCount)

	require.True(t, c.Has([]byte("seeded")))
	require.Equal(t, 2, kvCacheHitCount)

	ExportCachedStorageMetrics()
	ResetCachedStorageMetrics()
	require.Equal(t, 0, kvCacheHitCount)
	require.Equal(t, 0, kvCacheMissCount)
}

func TestCachedStorageRoundTrip(t *testing.T) {
	c := NewCachedStorage(kv.NewMemory(), 10)

	tests := []struct {
		name  string
		key   []byte
		value []byte
	}{
		{name: "plain", key: []byte("balance-0x01"), value: []byte{0x64}},
		{name: "empty value", key: []byte("balance-0x02"), value: []byte{}},
		{name: "empty key", key: []byte{}, value: []byte("v")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Nil(t, c.Get(tt.key))
			require.False(t, c.Has(tt.key))

			c.Put(tt.key, tt.value)
			require.EqualValues(t, tt.value, c.Get(tt.key))
			require.True(t, c.Has(tt.key))

			c.Delete(tt.key)
			require.Nil(t, c.Get(tt.key))
			require.False(t, c.Has(tt.key))
		})
	}
}

func TestCachedStorageBatch(t *testing.T) {
	err := Initialize(repo.KVStorageTypePebble, repo.KVStorageCacheSize, repo.KVStorageSync)
	require.Nil(t, err)

	s, err := Open(repo.GetStoragePath(t.TempDir()))
	require.Nil(t, err)
	c := NewCachedStorage(s, 10)

	t.Run("pending writes stay invisible until commit", func(t *testing.T) {
		b := c.NewBatch()
		b.Put([]byte("a"), []byte("1"))
		b.Put([]byte("b"), []byte("2"))

		require.Nil(t, c.Get([]byte("a")))
		require.False(t, c.Has([]byte("b")))

		b.Commit()

		require.Equal(t, []byte("1"), c.Get([]byte("a")))
		require.Equal(t, []byte("2"), c.Get([]byte("b")))
	})

	t.Run("batch delete purges the cache", func(t *testing.T) {
		c.Put([]byte("gone"), []byte("x"))
		require.True(t, c.Has([]byte("gone")))

		b := c.NewBatch()
		b.Delete([]byte("gone"))
		b.Commit()

		require.Nil(t, c.Get([]byte("gone")))
		require.False(t, c.Has([]byte("gone")))
	})

	t.Run("empty value behaves like delete", func(t *testing.T) {
		c.Put([]byte("blank"), []byte("x"))

		b := c.NewBatch()
		b.Put([]byte("blank"), []byte{})
		b.Commit()

		require.Nil(t, c.Get([]byte("blank")))
		require.False(t, c.Has([]byte("blank")))
	})

	t.Run("reset forgets pending writes", func(t *testing.T) {
		b := c.NewBatch()
		b.Put([]byte("dropped"), []byte("x"))
		require.Equal(t, len("dropped")+len("x"), b.Size())
		b.Reset()
		b.Commit()

		require.Nil(t, c.Get([]byte("dropped")))
	})
}
