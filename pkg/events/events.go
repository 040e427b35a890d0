package events

import (
	"github.com/axiomesh/token-ledger/pkg/types"
)

// CallExecutedEvent is published on the executor's call feed once the
// receipt of a state-changing call has been persisted.
type CallExecutedEvent struct {
	Receipt *types.Receipt
}
