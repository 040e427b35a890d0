package executor

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/axiomesh/token-ledger/pkg/events"
	"github.com/axiomesh/token-ledger/pkg/types"
)

type Executor interface {
	// Start starts the order-preserving execution loop.
	Start() error

	// Stop stops the execution loop.
	Stop() error

	// SubmitCall hands a state-changing call to the execution loop and blocks
	// until its receipt has been persisted.
	SubmitCall(call *CallRequest) *types.Receipt

	// QueryCall runs a read-only call against the latest committed state. It
	// is serialized with writes but assigns no sequence, persists nothing and
	// emits no events.
	QueryCall(call *CallRequest) ([]byte, error)

	// SubscribeCallEvent registers a subscription of CallExecutedEvent.
	SubscribeCallEvent(ch chan<- events.CallExecutedEvent) event.Subscription

	// SubscribeLogsEvent registers a subscription for the logs of executed calls.
	SubscribeLogsEvent(ch chan<- []*types.Log) event.Subscription
}

// CallRequest is a single contract call addressed by ABI calldata.
type CallRequest struct {
	From ethcommon.Address
	To   ethcommon.Address
	Data []byte
}
