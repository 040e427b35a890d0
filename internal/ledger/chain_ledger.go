package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/storagemgr"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/storage/kv"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var (
	ErrNotFound = errors.New("not found in DB")
)

var _ ChainLedger = (*ChainLedgerImpl)(nil)

const receiptCacheSize = 1024

type ChainLedgerImpl struct {
	receiptStore kv.Storage
	logger       logrus.FieldLogger

	chainMeta      *types.ChainMeta
	chainMetaMutex sync.RWMutex

	// call sequence -> receipt
	receiptCache *lru.Cache[uint64, *types.Receipt]
}

func newChainLedger(receiptStore kv.Storage) (*ChainLedgerImpl, error) {
	c := &ChainLedgerImpl{
		receiptStore: receiptStore,
		logger:       loggers.Logger(loggers.Storage),
	}

	var err error
	c.chainMeta, err = c.LoadChainMeta()
	if err != nil {
		return nil, fmt.Errorf("load chain meta failed: %w", err)
	}

	c.receiptCache, err = lru.New[uint64, *types.Receipt](receiptCacheSize)
	if err != nil {
		return nil, fmt.Errorf("new receipt cache failed: %w", err)
	}

	return c, nil
}

func NewChainLedger(rep *repo.Repo) (*ChainLedgerImpl, error) {
	receiptStorage, err := storagemgr.Open(repo.GetStoragePath(rep.RepoRoot, storagemgr.Receipts))
	if err != nil {
		return nil, fmt.Errorf("create receipt storage: %w", err)
	}

	return newChainLedger(receiptStorage)
}

// GetReceipt get the receipt of the call with the given sequence
func (l *ChainLedgerImpl) GetReceipt(seq uint64) (*types.Receipt, error) {
	getReceiptCounter.Inc()

	if receipt, ok := l.receiptCache.Get(seq); ok {
		return receipt, nil
	}

	data := l.receiptStore.Get(compositeKey(receiptKey, seq))
	if data == nil {
		return nil, ErrNotFound
	}

	receipt := &types.Receipt{}
	if err := receipt.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("unmarshal receipt error: %w", err)
	}
	l.receiptCache.Add(seq, receipt)

	return receipt, nil
}

// PersistExecutionResult persist the receipt and the advanced chain meta in
// a single batch, so a crash never leaves the meta ahead of the receipts.
func (l *ChainLedgerImpl) PersistExecutionResult(receipt *types.Receipt) error {
	current := time.Now()
	if receipt == nil {
		return errors.New("empty persist receipt data")
	}

	batcher := l.receiptStore.NewBatch()

	data, err := receipt.Marshal()
	if err != nil {
		return fmt.Errorf("marshal receipt failed: %w", err)
	}
	batcher.Put(compositeKey(receiptKey, receipt.Seq), data)

	meta := &types.ChainMeta{LatestSeq: receipt.Seq}
	metaData, err := meta.Marshal()
	if err != nil {
		return fmt.Errorf("marshal chain meta failed: %w", err)
	}
	batcher.Put([]byte(chainMetaKey), metaData)

	batcher.Commit()

	l.receiptCache.Add(receipt.Seq, receipt)
	l.UpdateChainMeta(meta)

	l.logger.WithFields(logrus.Fields{
		"seq":    receipt.Seq,
		"status": receipt.Status,
		"elapse": time.Since(current),
	}).Debug("persist execution result elapsed")
	return nil
}

// UpdateChainMeta update the chain meta data
func (l *ChainLedgerImpl) UpdateChainMeta(meta *types.ChainMeta) {
	l.chainMetaMutex.Lock()
	defer l.chainMetaMutex.Unlock()
	l.chainMeta = &types.ChainMeta{LatestSeq: meta.LatestSeq}
}

// GetChainMeta get chain meta data, nil when no call was ever persisted
func (l *ChainLedgerImpl) GetChainMeta() *types.ChainMeta {
	l.chainMetaMutex.RLock()
	defer l.chainMetaMutex.RUnlock()
	if l.chainMeta == nil {
		return nil
	}
	return &types.ChainMeta{LatestSeq: l.chainMeta.LatestSeq}
}

// LoadChainMeta load chain meta data from the underlying store
func (l *ChainLedgerImpl) LoadChainMeta() (*types.ChainMeta, error) {
	if !l.receiptStore.Has([]byte(chainMetaKey)) {
		return nil, nil
	}

	chain := &types.ChainMeta{}
	body := l.receiptStore.Get([]byte(chainMetaKey))
	if err := chain.Unmarshal(body); err != nil {
		return nil, fmt.Errorf("unmarshal chain meta: %w", err)
	}

	return chain, nil
}

func (l *ChainLedgerImpl) Close() {
	_ = l.receiptStore.Close()
}
