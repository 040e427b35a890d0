package kv

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type ldb struct {
	db *leveldb.DB
	wo *opt.WriteOptions
}

func NewLeveldb(path string, sync bool) (Storage, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}

	return &ldb{
		db: db,
		wo: &opt.WriteOptions{Sync: sync},
	}, nil
}

func (l *ldb) Put(key, value []byte) {
	if err := l.db.Put(key, value, l.wo); err != nil {
		panic(err)
	}
}

func (l *ldb) Delete(key []byte) {
	if err := l.db.Delete(key, l.wo); err != nil {
		panic(err)
	}
}

func (l *ldb) Get(key []byte) []byte {
	value, err := l.db.Get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil
		}
		panic(err)
	}
	return value
}

func (l *ldb) Has(key []byte) bool {
	has, err := l.db.Has(key, nil)
	if err != nil {
		panic(err)
	}
	return has
}

func (l *ldb) NewBatch() Batch {
	return &ldbBatch{
		db:    l.db,
		wo:    l.wo,
		batch: new(leveldb.Batch),
	}
}

func (l *ldb) Iterator(start, end []byte) Iterator {
	return &ldbIterator{iter: l.db.NewIterator(&util.Range{Start: start, Limit: end}, nil)}
}

func (l *ldb) Prefix(prefix []byte) Iterator {
	return &ldbIterator{iter: l.db.NewIterator(util.BytesPrefix(prefix), nil)}
}

func (l *ldb) Close() error {
	return l.db.Close()
}

type ldbBatch struct {
	db    *leveldb.DB
	wo    *opt.WriteOptions
	batch *leveldb.Batch
	size  int
}

func (b *ldbBatch) Put(key, value []byte) {
	b.batch.Put(key, value)
	b.size += len(key) + len(value)
}

func (b *ldbBatch) Delete(key []byte) {
	b.batch.Delete(key)
	b.size += len(key)
}

func (b *ldbBatch) Commit() {
	if err := b.db.Write(b.batch, b.wo); err != nil {
		panic(err)
	}
}

func (b *ldbBatch) Size() int {
	return b.size
}

func (b *ldbBatch) Reset() {
	b.batch.Reset()
	b.size = 0
}

// ldbIterator adapts goleveldb's iterator, whose Prev on a fresh iterator
// reports exhaustion instead of moving to the last entry.
type ldbIterator struct {
	iter       iterator.Iterator
	positioned bool
}

func (it *ldbIterator) First() bool {
	it.positioned = true
	return it.iter.First()
}

func (it *ldbIterator) Last() bool {
	it.positioned = true
	return it.iter.Last()
}

func (it *ldbIterator) Next() bool {
	it.positioned = true
	return it.iter.Next()
}

func (it *ldbIterator) Prev() bool {
	if !it.positioned {
		return it.Last()
	}
	return it.iter.Prev()
}

func (it *ldbIterator) Key() []byte {
	return append([]byte{}, it.iter.Key()...)
}

func (it *ldbIterator) Value() []byte {
	return append([]byte{}, it.iter.Value()...)
}
