package ledger

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

const (
	receiptKey   = "receipt-"
	chainMetaKey = "chain-meta"
	accountKey   = "account-"
	stateKey     = "state-"
)

func compositeKey(prefix string, value any) []byte {
	return append([]byte(prefix), []byte(fmt.Sprintf("%v", value))...)
}

func CompositeAccountKey(addr common.Address) []byte {
	return append([]byte(accountKey), addr.Bytes()...)
}

// CompositeStorageKey scopes a contract storage key under its account. The
// address part is fixed-size, so distinct (addr, key) pairs never collide.
func CompositeStorageKey(addr common.Address, key []byte) []byte {
	return append(append([]byte(stateKey), addr.Bytes()...), key...)
}
