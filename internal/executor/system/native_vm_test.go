package system

import (
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/executor/system/token"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

const admin1 = "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013"

func initLedger(t *testing.T, rep *repo.Repo) *ledger.Ledger {
	lg, err := ledger.NewMemory(rep)
	require.Nil(t, err)

	lg.StateLedger.SetTxContext(0)
	err = InitGenesisData(rep.GenesisConfig, lg.StateLedger)
	require.Nil(t, err)
	lg.StateLedger.Finalise()
	err = lg.StateLedger.Commit()
	require.Nil(t, err)
	return lg
}

func TestNativeVM_RunTransfer(t *testing.T) {
	rep := repo.MockRepo(t)
	lg := initLedger(t, rep)
	nvm := New()

	minter := ethcommon.HexToAddress(rep.GenesisConfig.Minter)
	contractAddr := ethcommon.HexToAddress(common.TokenContractAddr)
	recipient := ethcommon.HexToAddress(admin1)

	data, err := PackTokenInput("transfer", recipient, big.NewInt(100))
	require.Nil(t, err)

	lg.StateLedger.SetTxContext(1)
	nvm.Reset(1, lg.StateLedger, minter, &contractAddr)
	ret, err := nvm.Run(data)
	require.Nil(t, err)
	require.Nil(t, ret)

	// the transfer log was flushed into the ledger
	logs := lg.StateLedger.GetLogs()
	require.Equal(t, 1, len(logs))
	require.Equal(t, contractAddr, logs[0].Address)

	// read the balance back through a view instance
	view := nvm.View()
	view.Reset(1, lg.StateLedger, minter, &contractAddr)
	data, err = PackTokenInput("balanceOf", recipient)
	require.Nil(t, err)
	ret, err = view.Run(data)
	require.Nil(t, err)
	unpacked, err := UnpackTokenOutput("balanceOf", ret)
	require.Nil(t, err)
	require.Equal(t, big.NewInt(100), unpacked[0].(*big.Int))
}

func TestNativeVM_RunMetaQueries(t *testing.T) {
	rep := repo.MockRepo(t)
	lg := initLedger(t, rep)
	nvm := New()

	minter := ethcommon.HexToAddress(rep.GenesisConfig.Minter)
	contractAddr := ethcommon.HexToAddress(common.TokenContractAddr)

	lg.StateLedger.SetTxContext(1)
	nvm.Reset(1, lg.StateLedger, minter, &contractAddr)

	run := func(method string) []any {
		data, err := PackTokenInput(method)
		require.Nil(t, err)
		ret, err := nvm.Run(data)
		require.Nil(t, err)
		unpacked, err := UnpackTokenOutput(method, ret)
		require.Nil(t, err)
		return unpacked
	}

	require.Equal(t, rep.GenesisConfig.Token.Name, run("name")[0].(string))
	require.Equal(t, rep.GenesisConfig.Token.Symbol, run("symbol")[0].(string))
	require.Equal(t, rep.GenesisConfig.Token.Decimals, run("decimals")[0].(uint8))
	require.Equal(t, rep.GenesisConfig.Token.TotalSupply, run("totalSupply")[0].(*big.Int).String())
}

func TestNativeVM_RunFailedCallKeepsNoLogs(t *testing.T) {
	rep := repo.MockRepo(t)
	lg := initLedger(t, rep)
	nvm := New()

	contractAddr := ethcommon.HexToAddress(common.TokenContractAddr)
	pauper := ethcommon.HexToAddress(admin1)

	data, err := PackTokenInput("transfer", ethcommon.HexToAddress(rep.GenesisConfig.Minter), big.NewInt(1))
	require.Nil(t, err)

	lg.StateLedger.SetTxContext(1)
	nvm.Reset(1, lg.StateLedger, pauper, &contractAddr)
	_, err = nvm.Run(data)
	require.ErrorIs(t, err, token.ErrInsufficientBalance)

	// nothing was flushed for the failed call
	require.Equal(t, 0, len(lg.StateLedger.GetLogs()))
}

func TestNativeVM_RunInvalidCalldata(t *testing.T) {
	rep := repo.MockRepo(t)
	lg := initLedger(t, rep)
	nvm := New()

	minter := ethcommon.HexToAddress(rep.GenesisConfig.Minter)
	contractAddr := ethcommon.HexToAddress(common.TokenContractAddr)

	lg.StateLedger.SetTxContext(1)

	t.Run("missing to address", func(t *testing.T) {
		nvm.Reset(1, lg.StateLedger, minter, nil)
		data, err := PackTokenInput("totalSupply")
		require.Nil(t, err)
		_, err = nvm.Run(data)
		require.ErrorIs(t, err, ErrNotExistSystemContract)
	})

	t.Run("not a system contract", func(t *testing.T) {
		randomAddr := ethcommon.HexToAddress(admin1)
		nvm.Reset(1, lg.StateLedger, minter, &randomAddr)
		data, err := PackTokenInput("totalSupply")
		require.Nil(t, err)
		_, err = nvm.Run(data)
		require.ErrorIs(t, err, ErrNotExistSystemContract)
	})

	t.Run("calldata too short", func(t *testing.T) {
		nvm.Reset(1, lg.StateLedger, minter, &contractAddr)
		_, err := nvm.Run([]byte{0x01, 0x02})
		require.ErrorIs(t, err, ErrNotExistMethodName)
	})

	t.Run("unknown selector", func(t *testing.T) {
		nvm.Reset(1, lg.StateLedger, minter, &contractAddr)
		_, err := nvm.Run([]byte{0xde, 0xad, 0xbe, 0xef})
		require.ErrorIs(t, err, ErrNotExistMethodName)
	})

	t.Run("malformed argument block", func(t *testing.T) {
		nvm.Reset(1, lg.StateLedger, minter, &contractAddr)
		data, err := PackTokenInput("transfer", ethcommon.HexToAddress(admin1), big.NewInt(1))
		require.Nil(t, err)
		_, err = nvm.Run(data[:len(data)-1])
		require.NotNil(t, err)
	})
}

func TestNativeVM_MethodName(t *testing.T) {
	nvm := New()
	contractAddr := ethcommon.HexToAddress(common.TokenContractAddr)

	data, err := PackTokenInput("transfer", ethcommon.HexToAddress(admin1), big.NewInt(1))
	require.Nil(t, err)
	require.Equal(t, "transfer", nvm.(*NativeVM).MethodName(contractAddr, data))

	require.Equal(t, "", nvm.(*NativeVM).MethodName(contractAddr, []byte{0xde, 0xad, 0xbe, 0xef}))
	require.Equal(t, "", nvm.(*NativeVM).MethodName(ethcommon.HexToAddress(admin1), data))
}

func TestNativeVM_IsSystemContract(t *testing.T) {
	nvm := New()
	require.True(t, nvm.IsSystemContract(ethcommon.HexToAddress(common.TokenContractAddr)))
	require.False(t, nvm.IsSystemContract(ethcommon.HexToAddress(admin1)))
	require.NotNil(t, nvm.(*NativeVM).GetContractInstance(ethcommon.HexToAddress(common.TokenContractAddr)))
}

func TestNativeVM_DeployGuards(t *testing.T) {
	nvm := New().(*NativeVM)

	require.Panics(t, func() {
		nvm.Deploy("0x0000000000000000000000000000000000000001", tokenManagerABI, token.Method2Sig, token.New(&common.SystemContractConfig{}))
	})
	require.Panics(t, func() {
		nvm.Deploy(common.TokenContractAddr, tokenManagerABI, token.Method2Sig, token.New(&common.SystemContractConfig{}))
	})
}
