package token

import (
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/internal/ledger/mock_ledger"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/types"
)

const (
	minterAddr         = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	admin1             = "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013"
	admin2             = "0xE7aEe2a87E7d5129Bd2fBf12fAfF7534Ed146666"
	defaultTotalSupply = "1000000000000000000000000000"
)

type mockLedger struct {
	*mock_ledger.MockStateLedger
	accountDb map[string]ledger.IAccount
	logs      []*types.Log
}

type mockAccount struct {
	*ledger.SimpleAccount
	stateDb map[string][]byte
}

func newMockAccount(addr ethcommon.Address) *mockAccount {
	return &mockAccount{
		SimpleAccount: ledger.NewMockAccount(addr),
		stateDb:       make(map[string][]byte),
	}
}

func (ma *mockAccount) SetState(key []byte, value []byte) {
	if ma.stateDb == nil {
		ma.stateDb = make(map[string][]byte)
	}
	ma.stateDb[string(key)] = value
}

func (ma *mockAccount) GetState(key []byte) (bool, []byte) {
	if ma.stateDb == nil {
		return false, nil
	}
	v, ok := ma.stateDb[string(key)]
	return ok, v
}

func newMockMinLedger(t *testing.T) *mockLedger {
	mockLg := &mockLedger{
		accountDb: make(map[string]ledger.IAccount),
	}
	ctrl := gomock.NewController(t)
	mockLg.MockStateLedger = mock_ledger.NewMockStateLedger(ctrl)

	mockLg.EXPECT().GetOrCreateAccount(gomock.Any()).DoAndReturn(func(address ethcommon.Address) ledger.IAccount {
		if mockLg.accountDb[address.String()] == nil {
			mockLg.accountDb[address.String()] = newMockAccount(address)
		}
		return mockLg.accountDb[address.String()]
	}).AnyTimes()

	mockLg.EXPECT().GetState(gomock.Any(), gomock.Any()).DoAndReturn(func(address ethcommon.Address, key []byte) (bool, []byte) {
		if mockLg.accountDb[address.String()] == nil {
			return false, nil
		}
		return mockLg.accountDb[address.String()].GetState(key)
	}).AnyTimes()

	mockLg.EXPECT().GetAccount(gomock.Any()).DoAndReturn(func(address ethcommon.Address) ledger.IAccount {
		return mockLg.accountDb[address.String()]
	}).AnyTimes()

	mockLg.EXPECT().AddLog(gomock.Any()).Do(func(log *types.Log) {
		mockLg.logs = append(mockLg.logs, log)
	}).AnyTimes()

	mockLg.EXPECT().GetLogs().DoAndReturn(func() []*types.Log {
		return mockLg.logs
	}).AnyTimes()

	return mockLg
}

func mockTokenManager(t *testing.T) *Manager {
	mockLg := newMockMinLedger(t)
	genesisConf := repo.DefaultGenesisConfig()
	conf, err := GenerateConfig(genesisConf)
	require.Nil(t, err)
	err = Init(mockLg, conf)
	require.Nil(t, err)

	user := ethcommon.HexToAddress(minterAddr)
	logs := make([]common.Log, 0)
	mgr := New(&common.SystemContractConfig{Logger: loggers.Logger(loggers.SystemContract)})
	mgr.SetContext(&common.VMContext{
		StateLedger: mockLg,
		CurrentUser: &user,
		CurrentLogs: &logs,
	})
	return mgr
}
