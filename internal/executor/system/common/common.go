package common

import (
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/ledger"
)

const (
	// ZeroAddress is a special address, no one has control
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// system contract address range 0x1000-0xffff, start from 1000, avoid conflicts with precompiled contracts
	// SystemContractStartAddr is the start address of system contract
	SystemContractStartAddr = "0x0000000000000000000000000000000000001000"

	// TokenContractAddr is the contract holding the fungible token ledger
	TokenContractAddr = "0x0000000000000000000000000000000000001002"

	// SystemContractEndAddr is the end address of system contract
	SystemContractEndAddr = "0x000000000000000000000000000000000000ffff"
)

type SystemContractConfig struct {
	Logger logrus.FieldLogger
}

type VirtualMachine interface {
	// Run executes ABI-encoded calldata against the contract selected by Reset
	Run(data []byte) ([]byte, error)

	// IsSystemContract judge if is system contract
	IsSystemContract(addr ethcommon.Address) bool

	// MethodName resolves the method selector of the calldata, empty if unknown
	MethodName(addr ethcommon.Address, data []byte) string

	// Reset the state of the system contract
	Reset(currentSeq uint64, stateLedger ledger.StateLedger, from ethcommon.Address, to *ethcommon.Address)

	// View return a view system contract
	View() VirtualMachine
}

type VMContext struct {
	StateLedger ledger.StateLedger
	CurrentSeq  uint64
	CurrentLogs *[]Log
	CurrentUser *ethcommon.Address
}

// SystemContract must be implemented by all system contract
type SystemContract interface {
	SetContext(*VMContext)
}

type Log struct {
	Address ethcommon.Address
	Topics  []ethcommon.Hash
	Data    []byte
	Removed bool
}
