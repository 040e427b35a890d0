package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/axiomesh/token-ledger/pkg/types"
)

// ChainLedger handles receipt and chain meta data.
//
//go:generate mockgen -destination mock_ledger/mock_ledger.go -package mock_ledger -source ledger.go
type ChainLedger interface {
	// GetReceipt get the receipt of the call with the given sequence
	GetReceipt(seq uint64) (*types.Receipt, error)

	// PersistExecutionResult persist the receipt and advance the chain meta
	PersistExecutionResult(receipt *types.Receipt) error

	// GetChainMeta get chain meta data, nil when no call was ever persisted
	GetChainMeta() *types.ChainMeta

	// UpdateChainMeta update the chain meta data
	UpdateChainMeta(meta *types.ChainMeta)

	// LoadChainMeta load chain meta data from the underlying store
	LoadChainMeta() (*types.ChainMeta, error)

	Close()
}

type StateLedger interface {
	StateAccessor

	// AddLog record an event log for the current call
	AddLog(log *types.Log)

	// GetLogs return the event logs recorded for the current call
	GetLogs() []*types.Log

	// SetTxContext prepare the ledger for the call with the given sequence
	SetTxContext(seq uint64)

	// Finalise move the dirty state of the current call into the pending area
	Finalise()

	Version() uint64

	// Close release resource
	Close()
}

// StateAccessor manipulates the state data
type StateAccessor interface {
	// GetOrCreateAccount get the account, create a fresh one if absent
	GetOrCreateAccount(addr common.Address) IAccount

	// GetAccount get the account, nil if it was never committed
	GetAccount(addr common.Address) IAccount

	// GetState get account state value using account address and key
	GetState(addr common.Address, key []byte) (bool, []byte)

	// SetState set account state value using account address and key
	SetState(addr common.Address, key []byte, value []byte)

	// Commit flush the pending state of all touched accounts
	Commit() error

	// Clear drop all uncommitted state
	Clear()
}

type IAccount interface {
	fmt.Stringer

	GetAddress() common.Address

	GetState(key []byte) (bool, []byte)

	SetState(key []byte, value []byte)

	// Finalise moves dirty state into pending state, returning the touched keys
	Finalise() [][]byte

	IsCreated() bool

	SetCreated(created bool)
}
