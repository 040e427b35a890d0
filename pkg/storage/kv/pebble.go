package kv

import (
	pebbledb "github.com/cockroachdb/pebble"
)

var (
	SyncWriteOptions   = &pebbledb.WriteOptions{Sync: true}
	NoSyncWriteOptions = &pebbledb.WriteOptions{Sync: false}
)

type pdb struct {
	db *pebbledb.DB
	wo *pebbledb.WriteOptions
}

func NewPebble(path string, opts *pebbledb.Options, wo *pebbledb.WriteOptions) (Storage, error) {
	db, err := pebbledb.Open(path, opts)
	if err != nil {
		return nil, err
	}

	return &pdb{
		db: db,
		wo: wo,
	}, nil
}

func (p *pdb) Put(key, value []byte) {
	if err := p.db.Set(key, value, p.wo); err != nil {
		panic(err)
	}
}

func (p *pdb) Delete(key []byte) {
	if err := p.db.Delete(key, p.wo); err != nil {
		panic(err)
	}
}

func (p *pdb) Get(key []byte) []byte {
	value, closer, err := p.db.Get(key)
	if err != nil {
		if err == pebbledb.ErrNotFound {
			return nil
		}
		panic(err)
	}
	ret := append([]byte{}, value...)
	if err := closer.Close(); err != nil {
		panic(err)
	}
	return ret
}

func (p *pdb) Has(key []byte) bool {
	return p.Get(key) != nil
}

func (p *pdb) NewBatch() Batch {
	return &pdbBatch{
		db:    p.db,
		wo:    p.wo,
		batch: p.db.NewBatch(),
	}
}

func (p *pdb) Iterator(start, end []byte) Iterator {
	return &pdbIterator{iter: p.db.NewIter(&pebbledb.IterOptions{
		LowerBound: start,
		UpperBound: end,
	})}
}

func (p *pdb) Prefix(prefix []byte) Iterator {
	return &pdbIterator{iter: p.db.NewIter(&pebbledb.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	})}
}

func (p *pdb) Close() error {
	return p.db.Close()
}

type pdbBatch struct {
	db    *pebbledb.DB
	wo    *pebbledb.WriteOptions
	batch *pebbledb.Batch
	size  int
}

func (b *pdbBatch) Put(key, value []byte) {
	if err := b.batch.Set(key, value, nil); err != nil {
		panic(err)
	}
	b.size += len(key) + len(value)
}

func (b *pdbBatch) Delete(key []byte) {
	if err := b.batch.Delete(key, nil); err != nil {
		panic(err)
	}
	b.size += len(key)
}

func (b *pdbBatch) Commit() {
	if err := b.batch.Commit(b.wo); err != nil {
		panic(err)
	}
}

func (b *pdbBatch) Size() int {
	return b.size
}

func (b *pdbBatch) Reset() {
	b.batch.Reset()
	b.size = 0
}

// pdbIterator adapts pebble's positioned iterator to the unpositioned
// contract of kv.Iterator.
type pdbIterator struct {
	iter       *pebbledb.Iterator
	positioned bool
}

func (it *pdbIterator) First() bool {
	it.positioned = true
	return it.iter.First()
}

func (it *pdbIterator) Last() bool {
	it.positioned = true
	return it.iter.Last()
}

func (it *pdbIterator) Next() bool {
	if !it.positioned {
		return it.First()
	}
	return it.iter.Next()
}

func (it *pdbIterator) Prev() bool {
	if !it.positioned {
		return it.Last()
	}
	return it.iter.Prev()
}

func (it *pdbIterator) Key() []byte {
	return append([]byte{}, it.iter.Key()...)
}

func (it *pdbIterator) Value() []byte {
	return append([]byte{}, it.iter.Value()...)
}
