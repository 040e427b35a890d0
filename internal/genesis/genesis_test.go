package genesis

import (
	"encoding/json"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	syscommon "github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/executor/system/token"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/internal/ledger/mock_ledger"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

func TestInitialize(t *testing.T) {
	rep := repo.MockRepo(t)
	lg, err := ledger.NewMemory(rep)
	require.Nil(t, err)

	genesisConfig := repo.DefaultGenesisConfig()
	require.Nil(t, Initialize(genesisConfig, lg))
	require.True(t, IsInitialized(lg))

	// genesis persists the sequence-zero receipt with the mint log
	meta := lg.ChainLedger.GetChainMeta()
	require.NotNil(t, meta)
	require.Equal(t, uint64(0), meta.LatestSeq)

	receipt, err := lg.ChainLedger.GetReceipt(0)
	require.Nil(t, err)
	require.True(t, receipt.IsSuccess())
	require.Equal(t, constructMethod, receipt.Method)
	require.Equal(t, ethcommon.HexToAddress(genesisConfig.Minter), receipt.From)
	require.Equal(t, 1, len(receipt.Logs))
	require.Equal(t, ethcommon.HexToAddress(syscommon.TokenContractAddr), receipt.Logs[0].Address)

	// the mint transfers the whole supply out of the zero address
	mint := receipt.Logs[0]
	require.Equal(t, 2, len(mint.Topics))
	require.Equal(t, ethcommon.Hash{}, mint.Topics[1])

	account := lg.StateLedger.GetAccount(ethcommon.HexToAddress(syscommon.TokenContractAddr))
	require.NotNil(t, account)
	exists, supply := account.GetState([]byte(token.TotalSupplyKey))
	require.True(t, exists)
	totalSupply, err := genesisConfig.ParseTotalSupply()
	require.Nil(t, err)
	require.Equal(t, totalSupply.Bytes(), supply)
}

func TestInitialize_InvalidConfig(t *testing.T) {
	rep := repo.MockRepo(t)
	lg, err := ledger.NewMemory(rep)
	require.Nil(t, err)

	genesisConfig := repo.DefaultGenesisConfig()
	genesisConfig.Minter = "0x0000000000000000000000000000000000000000"

	err = Initialize(genesisConfig, lg)
	require.ErrorIs(t, err, token.ErrMinter)
	require.False(t, IsInitialized(lg))
	require.Nil(t, lg.ChainLedger.GetChainMeta())
}

func TestGetGenesisConfig(t *testing.T) {
	mockCtl := gomock.NewController(t)
	chainLedger := mock_ledger.NewMockChainLedger(mockCtl)
	stateLedger := mock_ledger.NewMockStateLedger(mockCtl)
	mockLedger := &ledger.Ledger{
		ChainLedger: chainLedger,
		StateLedger: stateLedger,
	}

	// no genesis account yet
	stateLedger.EXPECT().GetAccount(gomock.Any()).Return(nil).Times(1)
	cfg, err := GetGenesisConfig(mockLedger)
	require.Nil(t, err)
	require.Nil(t, cfg)

	// genesis account without the config key
	account := ledger.NewMockAccount(ethcommon.HexToAddress(syscommon.ZeroAddress))
	stateLedger.EXPECT().GetAccount(gomock.Any()).Return(account).AnyTimes()
	cfg, err = GetGenesisConfig(mockLedger)
	require.Nil(t, err)
	require.Nil(t, cfg)

	// stored config round trips
	genesisConfig := repo.DefaultGenesisConfig()
	genesisCfg, err := json.Marshal(genesisConfig)
	require.Nil(t, err)
	account.SetState(genesisConfigKey, genesisCfg)
	cfg, err = GetGenesisConfig(mockLedger)
	require.Nil(t, err)
	require.Equal(t, genesisConfig.Minter, cfg.Minter)
	require.Equal(t, genesisConfig.Token.Symbol, cfg.Token.Symbol)

	// corrupted config errors
	account.SetState(genesisConfigKey, []byte{})
	_, err = GetGenesisConfig(mockLedger)
	require.NotNil(t, err)
}
