package ledger

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/storage/kv"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var (
	holderAddr  = ethcommon.HexToAddress("0xED17543171C1459714cdC6519b58fFcC29A3C3c9")
	spenderAddr = ethcommon.HexToAddress("0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013")
)

func TestSimpleAccountStateLayering(t *testing.T) {
	account := NewMockAccount(holderAddr)

	t.Run("missing key reads as absent", func(t *testing.T) {
		ok, val := account.GetState([]byte("balance"))
		require.False(t, ok)
		require.Nil(t, val)
	})

	t.Run("dirty write visible before finalise", func(t *testing.T) {
		account.SetState([]byte("balance"), []byte{0x64})
		ok, val := account.GetState([]byte("balance"))
		require.True(t, ok)
		require.Equal(t, []byte{0x64}, val)
	})

	t.Run("finalise moves dirty into pending", func(t *testing.T) {
		touched := account.Finalise()
		require.Len(t, touched, 1)
		require.Equal(t, CompositeStorageKey(holderAddr, []byte("balance")), touched[0])

		ok, val := account.GetState([]byte("balance"))
		require.True(t, ok)
		require.Equal(t, []byte{0x64}, val)
	})

	t.Run("dirty overrides pending", func(t *testing.T) {
		account.SetState([]byte("balance"), []byte{0x32})
		ok, val := account.GetState([]byte("balance"))
		require.True(t, ok)
		require.Equal(t, []byte{0x32}, val)
	})
}

func TestSimpleAccountReadThroughBackend(t *testing.T) {
	backend := kv.NewMemory()
	backend.Put(CompositeStorageKey(holderAddr, []byte("balance")), []byte{0x0a})

	account := NewAccount(backend, holderAddr)
	ok, val := account.GetState([]byte("balance"))
	require.True(t, ok)
	require.Equal(t, []byte{0x0a}, val)

	// the read is cached in originState, a backend change is not observed
	backend.Put(CompositeStorageKey(holderAddr, []byte("balance")), []byte{0x0b})
	ok, val = account.GetState([]byte("balance"))
	require.True(t, ok)
	require.Equal(t, []byte{0x0a}, val)
}

func initStateLedger(t *testing.T) StateLedger {
	rep := repo.MockRepo(t)
	lg, err := newStateLedger(rep, kv.NewMemory())
	require.Nil(t, err)
	return lg
}

func TestStateLedgerCommit(t *testing.T) {
	lg := initStateLedger(t)

	lg.SetTxContext(1)
	lg.SetState(holderAddr, []byte("balance"), []byte{0x64})
	lg.Finalise()
	require.Nil(t, lg.Commit())

	// Commit clears the touched accounts, the next read goes to the backend
	ok, val := lg.GetState(holderAddr, []byte("balance"))
	require.True(t, ok)
	require.Equal(t, []byte{0x64}, val)

	t.Run("account marker survives commit", func(t *testing.T) {
		require.NotNil(t, lg.GetAccount(holderAddr))
		require.Nil(t, lg.GetAccount(spenderAddr))
	})

	t.Run("empty value deletes the key", func(t *testing.T) {
		lg.SetTxContext(2)
		lg.SetState(holderAddr, []byte("balance"), []byte{})
		lg.Finalise()
		require.Nil(t, lg.Commit())

		ok, val := lg.GetState(holderAddr, []byte("balance"))
		require.False(t, ok)
		require.Nil(t, val)
	})

	t.Run("unchanged value is not rewritten", func(t *testing.T) {
		lg.SetTxContext(3)
		lg.SetState(holderAddr, []byte("symbol"), []byte("AXT"))
		lg.Finalise()
		require.Nil(t, lg.Commit())

		lg.SetTxContext(4)
		lg.SetState(holderAddr, []byte("symbol"), []byte("AXT"))
		lg.Finalise()
		require.Nil(t, lg.Commit())

		ok, val := lg.GetState(holderAddr, []byte("symbol"))
		require.True(t, ok)
		require.Equal(t, []byte("AXT"), val)
	})
}

func TestStateLedgerClear(t *testing.T) {
	lg := initStateLedger(t)

	lg.SetTxContext(1)
	lg.SetState(holderAddr, []byte("balance"), []byte{0x64})
	lg.Clear()

	// nothing was committed, the account is gone with the dropped state
	require.Nil(t, lg.GetAccount(holderAddr))

	ok, val := lg.GetState(holderAddr, []byte("balance"))
	require.False(t, ok)
	require.Nil(t, val)
}

func TestStateLedgerLogs(t *testing.T) {
	lg := initStateLedger(t)

	lg.SetTxContext(7)
	require.Empty(t, lg.GetLogs())
	require.Equal(t, uint64(7), lg.Version())

	lg.AddLog(&types.Log{Address: holderAddr, Data: []byte{0x01}})
	lg.AddLog(&types.Log{Address: holderAddr, Data: []byte{0x02}})

	logs := lg.GetLogs()
	require.Len(t, logs, 2)
	require.Equal(t, uint64(7), logs[0].Seq)
	require.Equal(t, uint64(0), logs[0].Index)
	require.Equal(t, uint64(1), logs[1].Index)

	// a new call context drops the previous logs
	lg.SetTxContext(8)
	require.Empty(t, lg.GetLogs())
}

func TestChainLedgerPersistExecutionResult(t *testing.T) {
	store := kv.NewMemory()
	cl, err := newChainLedger(store)
	require.Nil(t, err)

	require.Nil(t, cl.GetChainMeta())

	receipt := &types.Receipt{
		Seq:    1,
		From:   holderAddr,
		Method: "transfer",
		Status: types.ReceiptSUCCESS,
		Logs: []*types.Log{
			{
				Address: spenderAddr,
				Topics:  []ethcommon.Hash{ethcommon.BytesToHash([]byte{0xde, 0xad})},
				Data:    []byte{0x64},
				Seq:     1,
			},
		},
	}
	require.Nil(t, cl.PersistExecutionResult(receipt))

	t.Run("meta advanced with the receipt", func(t *testing.T) {
		meta := cl.GetChainMeta()
		require.NotNil(t, meta)
		require.Equal(t, uint64(1), meta.LatestSeq)
	})

	t.Run("receipt round trips", func(t *testing.T) {
		got, err := cl.GetReceipt(1)
		require.Nil(t, err)
		require.Equal(t, receipt.Method, got.Method)
		require.Equal(t, receipt.From, got.From)
		require.Len(t, got.Logs, 1)
		require.Equal(t, receipt.Logs[0].Topics, got.Logs[0].Topics)
	})

	t.Run("unknown sequence", func(t *testing.T) {
		_, err := cl.GetReceipt(99)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nil receipt rejected", func(t *testing.T) {
		require.NotNil(t, cl.PersistExecutionResult(nil))
	})

	t.Run("reopen over the same store", func(t *testing.T) {
		cl2, err := newChainLedger(store)
		require.Nil(t, err)

		meta := cl2.GetChainMeta()
		require.NotNil(t, meta)
		require.Equal(t, uint64(1), meta.LatestSeq)

		got, err := cl2.GetReceipt(1)
		require.Nil(t, err)
		require.Equal(t, "transfer", got.Method)
	})
}

func TestLedgerPersistReceipt(t *testing.T) {
	rep := repo.MockRepo(t)
	lg, err := NewMemory(rep)
	require.Nil(t, err)
	t.Cleanup(lg.Close)

	lg.PersistReceipt(&types.Receipt{Seq: 5, Method: "approve", Status: types.ReceiptFAILED})

	meta := lg.ChainLedger.GetChainMeta()
	require.NotNil(t, meta)
	require.Equal(t, uint64(5), meta.LatestSeq)

	got, err := lg.ChainLedger.GetReceipt(5)
	require.Nil(t, err)
	require.False(t, got.IsSuccess())
}