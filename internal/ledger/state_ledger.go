package ledger

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/storagemgr"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/storage/kv"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var _ StateLedger = (*StateLedgerImpl)(nil)

type StateLedgerImpl struct {
	logger  logrus.FieldLogger
	backend kv.Storage

	// accounts touched since the last Commit or Clear
	accounts map[string]IAccount

	// sequence of the call currently being executed
	seq  uint64
	logs []*types.Log
}

func newStateLedger(rep *repo.Repo, stateStorage kv.Storage) (StateLedger, error) {
	return &StateLedgerImpl{
		logger:   loggers.Logger(loggers.Storage),
		backend:  storagemgr.NewCachedStorage(stateStorage, rep.Config.Storage.KvCacheSize),
		accounts: make(map[string]IAccount),
	}, nil
}

// NewStateLedger create a new state ledger instance over the node's ledger store
func NewStateLedger(rep *repo.Repo) (StateLedger, error) {
	stateStorage, err := storagemgr.Open(repo.GetStoragePath(rep.RepoRoot, storagemgr.Ledger))
	if err != nil {
		return nil, fmt.Errorf("create stateDB: %w", err)
	}

	return newStateLedger(rep, stateStorage)
}

// SetTxContext prepares the ledger for the call with the given sequence.
// Logs recorded by the previous call are dropped.
func (l *StateLedgerImpl) SetTxContext(seq uint64) {
	l.seq = seq
	l.logs = make([]*types.Log, 0)
	storagemgr.ResetCachedStorageMetrics()
	l.logger.Debugf("[SetTxContext] seq: %v", seq)
}

// Version returns the sequence of the current call context
func (l *StateLedgerImpl) Version() uint64 {
	return l.seq
}

// Close close the ledger instance
func (l *StateLedgerImpl) Close() {
	_ = l.backend.Close()
}
