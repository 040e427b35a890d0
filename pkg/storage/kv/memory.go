package kv

import (
	"bytes"
	"sort"
	"strings"
	"sync"
)

type memory struct {
	lock sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an in-memory Storage, used by tests and as the
// fallback backend before storage initialization.
func NewMemory() Storage {
	return &memory{
		data: make(map[string][]byte),
	}
}

func (m *memory) Put(key, value []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.data[string(key)] = append([]byte{}, value...)
}

func (m *memory) Delete(key []byte) {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.data, string(key))
}

func (m *memory) Get(key []byte) []byte {
	m.lock.RLock()
	defer m.lock.RUnlock()
	value, ok := m.data[string(key)]
	if !ok {
		return nil
	}
	return append([]byte{}, value...)
}

func (m *memory) Has(key []byte) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	_, ok := m.data[string(key)]
	return ok
}

func (m *memory) NewBatch() Batch {
	return &memBatch{store: m}
}

func (m *memory) Iterator(start, end []byte) Iterator {
	m.lock.RLock()
	defer m.lock.RUnlock()

	var keys []string
	for k := range m.data {
		if start != nil && bytes.Compare([]byte(k), start) < 0 {
			continue
		}
		if end != nil && bytes.Compare([]byte(k), end) >= 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]memItem, len(keys))
	for i, k := range keys {
		items[i] = memItem{key: []byte(k), value: append([]byte{}, m.data[k]...)}
	}
	return &memIterator{items: items, pos: -1}
}

func (m *memory) Prefix(prefix []byte) Iterator {
	m.lock.RLock()
	defer m.lock.RUnlock()

	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	items := make([]memItem, len(keys))
	for i, k := range keys {
		items[i] = memItem{key: []byte(k), value: append([]byte{}, m.data[k]...)}
	}
	return &memIterator{items: items, pos: -1}
}

func (m *memory) Close() error {
	return nil
}

type memOp struct {
	key    []byte
	value  []byte
	delete bool
}

type memBatch struct {
	store *memory
	ops   []memOp
	size  int
}

func (b *memBatch) Put(key, value []byte) {
	b.ops = append(b.ops, memOp{key: append([]byte{}, key...), value: append([]byte{}, value...)})
	b.size += len(key) + len(value)
}

func (b *memBatch) Delete(key []byte) {
	b.ops = append(b.ops, memOp{key: append([]byte{}, key...), delete: true})
	b.size += len(key)
}

func (b *memBatch) Commit() {
	b.store.lock.Lock()
	defer b.store.lock.Unlock()
	for _, op := range b.ops {
		if op.delete {
			delete(b.store.data, string(op.key))
		} else {
			b.store.data[string(op.key)] = op.value
		}
	}
}

func (b *memBatch) Size() int {
	return b.size
}

func (b *memBatch) Reset() {
	b.ops = nil
	b.size = 0
}

type memItem struct {
	key   []byte
	value []byte
}

type memIterator struct {
	items []memItem
	pos   int
}

func (it *memIterator) First() bool {
	if len(it.items) == 0 {
		return false
	}
	it.pos = 0
	return true
}

func (it *memIterator) Last() bool {
	if len(it.items) == 0 {
		return false
	}
	it.pos = len(it.items) - 1
	return true
}

func (it *memIterator) Next() bool {
	if it.pos+1 >= len(it.items) {
		it.pos = len(it.items)
		return false
	}
	it.pos++
	return true
}

func (it *memIterator) Prev() bool {
	if it.pos == -1 {
		return it.Last()
	}
	if it.pos == 0 {
		it.pos = -1
		return false
	}
	it.pos--
	return true
}

func (it *memIterator) Key() []byte {
	return it.items[it.pos].key
}

func (it *memIterator) Value() []byte {
	return it.items[it.pos].value
}
