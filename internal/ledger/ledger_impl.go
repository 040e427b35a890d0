package ledger

import (
	"fmt"
	"time"

	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/storage/kv"
	"github.com/axiomesh/token-ledger/pkg/types"
)

type Ledger struct {
	ChainLedger ChainLedger
	StateLedger StateLedger
}

func NewLedgerWithStores(rep *repo.Repo, receiptStore, stateStore kv.Storage) (*Ledger, error) {
	var err error
	ledger := &Ledger{}
	if receiptStore != nil {
		ledger.ChainLedger, err = newChainLedger(receiptStore)
		if err != nil {
			return nil, fmt.Errorf("init chain ledger failed: %w", err)
		}
	} else {
		ledger.ChainLedger, err = NewChainLedger(rep)
		if err != nil {
			return nil, fmt.Errorf("init chain ledger failed: %w", err)
		}
	}

	if stateStore != nil {
		ledger.StateLedger, err = newStateLedger(rep, stateStore)
		if err != nil {
			return nil, fmt.Errorf("init state ledger failed: %w", err)
		}
	} else {
		ledger.StateLedger, err = NewStateLedger(rep)
		if err != nil {
			return nil, fmt.Errorf("init state ledger failed: %w", err)
		}
	}

	return ledger, nil
}

// NewMemory builds a fully memory-backed ledger for tests.
func NewMemory(rep *repo.Repo) (*Ledger, error) {
	return NewLedgerWithStores(rep, kv.NewMemory(), kv.NewMemory())
}

func NewLedger(rep *repo.Repo) (*Ledger, error) {
	return NewLedgerWithStores(rep, nil, nil)
}

// PersistReceipt persists one execution result. Persist failures are fatal:
// the chain meta must never run ahead of the committed state.
func (l *Ledger) PersistReceipt(receipt *types.Receipt) {
	current := time.Now()

	if err := l.ChainLedger.PersistExecutionResult(receipt); err != nil {
		panic(err)
	}
	getReceiptCounter.Set(0)
	persistReceiptDuration.Observe(float64(time.Since(current)) / float64(time.Second))
	latestSeqMetric.Set(float64(receipt.Seq))
}

func (l *Ledger) Close() {
	l.ChainLedger.Close()
	l.StateLedger.Close()
}
