package ledger

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/storage/kv"
)

var _ IAccount = (*SimpleAccount)(nil)

type bytesLazyLogger struct {
	bytes []byte
}

func (l *bytesLazyLogger) String() string {
	return hexutil.Encode(l.bytes)
}

type SimpleAccount struct {
	logger logrus.FieldLogger
	Addr   common.Address

	// The committed state, read through from the backend
	originState map[string][]byte

	// State finalised by the current call, waiting to be committed
	pendingState map[string][]byte

	// The latest state of the current call
	dirtyState map[string][]byte

	backend kv.Storage

	created bool // Flag whether the account was created in the current call
}

func NewAccount(backend kv.Storage, addr common.Address) *SimpleAccount {
	return &SimpleAccount{
		logger:       loggers.Logger(loggers.Storage),
		Addr:         addr,
		originState:  make(map[string][]byte),
		pendingState: make(map[string][]byte),
		dirtyState:   make(map[string][]byte),
		backend:      backend,
		created:      false,
	}
}

// NewMockAccount returns a memory-backed account for tests.
func NewMockAccount(addr common.Address) *SimpleAccount {
	return NewAccount(kv.NewMemory(), addr)
}

func (o *SimpleAccount) String() string {
	return fmt.Sprintf("{addr: %v, dirty keys: %v, pending keys: %v}", o.Addr, len(o.dirtyState), len(o.pendingState))
}

func (o *SimpleAccount) GetAddress() common.Address {
	return o.Addr
}

// GetState Get state from local cache, if not found, then get it from DB
func (o *SimpleAccount) GetState(key []byte) (bool, []byte) {
	if value, exist := o.dirtyState[string(key)]; exist {
		o.logger.Debugf("[GetState] get from dirty, addr: %v, key: %v, state: %v", o.Addr, &bytesLazyLogger{bytes: key}, &bytesLazyLogger{bytes: value})
		return value != nil, value
	}

	if value, exist := o.pendingState[string(key)]; exist {
		o.logger.Debugf("[GetState] get from pending, addr: %v, key: %v, state: %v", o.Addr, &bytesLazyLogger{bytes: key}, &bytesLazyLogger{bytes: value})
		return value != nil, value
	}

	if value, exist := o.originState[string(key)]; exist {
		o.logger.Debugf("[GetState] get from origin, addr: %v, key: %v, state: %v", o.Addr, &bytesLazyLogger{bytes: key}, &bytesLazyLogger{bytes: value})
		return value != nil, value
	}

	start := time.Now()
	val := o.backend.Get(CompositeStorageKey(o.Addr, key))
	stateReadDuration.Observe(float64(time.Since(start)) / float64(time.Second))
	o.logger.Debugf("[GetState] get from storage, addr: %v, key: %v, state: %v", o.Addr, &bytesLazyLogger{bytes: key}, &bytesLazyLogger{bytes: val})

	o.originState[string(key)] = val

	return val != nil, val
}

// SetState Set account state
func (o *SimpleAccount) SetState(key []byte, value []byte) {
	_, prev := o.GetState(key)
	o.logger.Debugf("[SetState] addr: %v, key: %v, before state: %v, after state: %v", o.Addr, &bytesLazyLogger{bytes: key}, &bytesLazyLogger{bytes: prev}, &bytesLazyLogger{bytes: value})
	o.dirtyState[string(key)] = value
}

// Finalise moves all dirty states into the pending states.
// Return all dirty state keys
func (o *SimpleAccount) Finalise() [][]byte {
	touchedKeys := make([][]byte, 0, len(o.dirtyState))
	for key, value := range o.dirtyState {
		o.pendingState[key] = value
		touchedKeys = append(touchedKeys, CompositeStorageKey(o.Addr, []byte(key)))
	}
	o.dirtyState = make(map[string][]byte)
	return touchedKeys
}

func (o *SimpleAccount) IsCreated() bool {
	return o.created
}

func (o *SimpleAccount) SetCreated(created bool) {
	o.created = created
}
