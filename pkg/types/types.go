// Package types holds the wire types shared between the ledger, the
// executor and the API layer. Persistence uses RLP, the API uses JSON.
package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
)

type ReceiptStatus uint32

const (
	ReceiptSUCCESS ReceiptStatus = iota
	ReceiptFAILED
)

// Log is a contract event record. Topics[0] is the event signature hash,
// the remaining topics are the indexed fields.
type Log struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`

	// Seq and Index are filled in by the state ledger when the log is
	// recorded for the current call.
	Seq   uint64 `json:"seq"`
	Index uint64 `json:"index"`

	Removed bool `json:"removed"`
}

func (l *Log) Marshal() ([]byte, error) {
	return rlp.EncodeToBytes(l)
}

func (l *Log) Unmarshal(data []byte) error {
	return rlp.DecodeBytes(data, l)
}

// Receipt is the persisted result of one contract call. Seq is the position
// of the call in the ledger history, starting at 0 for the genesis mint.
type Receipt struct {
	Seq    uint64         `json:"seq"`
	From   common.Address `json:"from"`
	Method string         `json:"method"`
	Ret    hexutil.Bytes  `json:"ret"`
	Status ReceiptStatus  `json:"status"`
	ErrMsg string         `json:"err_msg,omitempty"`
	Logs   []*Log         `json:"logs"`
}

func (r *Receipt) Marshal() ([]byte, error) {
	return rlp.EncodeToBytes(r)
}

func (r *Receipt) Unmarshal(data []byte) error {
	return rlp.DecodeBytes(data, r)
}

func (r *Receipt) IsSuccess() bool {
	return r.Status == ReceiptSUCCESS
}

// ChainMeta tracks the latest persisted call sequence.
type ChainMeta struct {
	LatestSeq uint64 `json:"latest_seq"`
}

func (m *ChainMeta) Marshal() ([]byte, error) {
	return rlp.EncodeToBytes(m)
}

func (m *ChainMeta) Unmarshal(data []byte) error {
	return rlp.DecodeBytes(data, m)
}
