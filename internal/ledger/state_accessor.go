package ledger

import (
	"bytes"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/storagemgr"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var _ StateLedger = (*StateLedgerImpl)(nil)

// GetOrCreateAccount get the account, if not exist, create a new account
func (l *StateLedgerImpl) GetOrCreateAccount(addr common.Address) IAccount {
	account := l.GetAccount(addr)
	if account == nil {
		account = NewAccount(l.backend, addr)
		account.SetCreated(true)
		l.accounts[addr.String()] = account
		l.logger.Debugf("[GetOrCreateAccount] create account, addr: %v", addr)
	} else {
		l.logger.Debugf("[GetOrCreateAccount] get account, addr: %v", addr)
	}

	return account
}

// GetAccount get account info using account address, nil if it was never committed
func (l *StateLedgerImpl) GetAccount(addr common.Address) IAccount {
	if account, ok := l.accounts[addr.String()]; ok {
		l.logger.Debugf("[GetAccount] cache hit from accounts, addr: %v", addr)
		return account
	}

	start := time.Now()
	has := l.backend.Has(CompositeAccountKey(addr))
	accountReadDuration.Observe(float64(time.Since(start)) / float64(time.Second))
	if !has {
		l.logger.Debugf("[GetAccount] account not found, addr: %v", addr)
		return nil
	}

	account := NewAccount(l.backend, addr)
	l.accounts[addr.String()] = account
	l.logger.Debugf("[GetAccount] get from storage, addr: %v", addr)
	return account
}

// GetState get account state value using account address and key
func (l *StateLedgerImpl) GetState(addr common.Address, key []byte) (bool, []byte) {
	account := l.GetOrCreateAccount(addr)
	return account.GetState(key)
}

// SetState set account state value using account address and key
func (l *StateLedgerImpl) SetState(addr common.Address, key []byte, value []byte) {
	account := l.GetOrCreateAccount(addr)
	account.SetState(key, value)
}

// Clear drops all uncommitted state of the current call
func (l *StateLedgerImpl) Clear() {
	l.accounts = make(map[string]IAccount)
}

// Finalise moves the dirty state of every touched account into its pending area
func (l *StateLedgerImpl) Finalise() {
	for _, account := range l.accounts {
		account.Finalise()
	}
}

// Commit flushes the pending state of all touched accounts into the backend.
// Keys whose pending value is empty are deleted, so a zeroed entry reads the
// same as one that never existed.
func (l *StateLedgerImpl) Commit() error {
	current := time.Now()
	storagemgr.ExportCachedStorageMetrics()

	batch := l.backend.NewBatch()
	flushed := 0
	for _, acc := range l.accounts {
		account := acc.(*SimpleAccount)
		if account.IsCreated() {
			batch.Put(CompositeAccountKey(account.Addr), []byte{1})
			account.SetCreated(false)
		}
		for key, valBytes := range account.pendingState {
			origValBytes := account.originState[key]
			if bytes.Equal(origValBytes, valBytes) {
				continue
			}
			if len(valBytes) == 0 {
				batch.Delete(CompositeStorageKey(account.Addr, []byte(key)))
			} else {
				batch.Put(CompositeStorageKey(account.Addr, []byte(key)), valBytes)
			}
			flushed++
		}
	}
	// remove accounts that were cached during the current call
	l.Clear()
	batch.Commit()

	flushDirtyStateDuration.Observe(float64(time.Since(current)) / float64(time.Second))
	flushedStateKeysPerCommit.Set(float64(flushed))

	l.logger.WithFields(logrus.Fields{
		"seq":    l.seq,
		"keys":   flushed,
		"elapse": time.Since(current),
	}).Debug("[Commit] flush dirty state into kv")
	return nil
}

// AddLog records an event log for the current call
func (l *StateLedgerImpl) AddLog(log *types.Log) {
	log.Seq = l.seq
	log.Index = uint64(len(l.logs))
	l.logs = append(l.logs, log)
	l.logger.Debugf("[AddLog] seq: %v, index: %v, address: %v", log.Seq, log.Index, log.Address)
}

// GetLogs returns the event logs recorded for the current call
func (l *StateLedgerImpl) GetLogs() []*types.Log {
	return l.logs
}
