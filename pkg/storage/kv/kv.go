// Package kv provides the key-value storage abstraction shared by every
// persistent store in the node. Implementations panic on backend failures:
// a half-working store is worse than a dead process for ledger data.
package kv

type Storage interface {
	Put(key, value []byte)
	Delete(key []byte)
	Get(key []byte) []byte
	Has(key []byte) bool
	NewBatch() Batch
	// Iterator iterates over [start, end). A nil end means "no upper bound".
	Iterator(start, end []byte) Iterator
	Prefix(prefix []byte) Iterator
	Close() error
}

type Batch interface {
	Put(key, value []byte)
	Delete(key []byte)
	Commit()
	Size() int
	Reset()
}

// Iterator starts unpositioned: the first Next (or Prev) moves to the
// first (or last) entry.
type Iterator interface {
	First() bool
	Last() bool
	Next() bool
	Prev() bool
	Key() []byte
	Value() []byte
}

// prefixUpperBound returns the smallest key greater than every key with the
// given prefix, or nil when no such bound exists (prefix of all 0xff).
func prefixUpperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			bound := make([]byte, i+1)
			copy(bound, prefix[:i+1])
			bound[i]++
			return bound
		}
	}
	return nil
}
