package app

import (
	"context"
	"math/big"
	"testing"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/axiomesh/token-ledger/internal/executor"
	"github.com/axiomesh/token-ledger/internal/executor/system"
	syscommon "github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/executor/system/token"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

func TestTokenLedgerLifecycle(t *testing.T) {
	rep := repo.MockRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	tl, err := NewTokenLedger(rep, ctx, cancel)
	require.Nil(t, err)
	require.Nil(t, tl.Start())

	// genesis ran on the fresh repo
	meta := tl.Ledger.ChainLedger.GetChainMeta()
	require.NotNil(t, meta)
	require.Equal(t, uint64(0), meta.LatestSeq)

	data, err := system.PackTokenInput(token.TransferMethod,
		ethcommon.HexToAddress("0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013"), big.NewInt(7))
	require.Nil(t, err)
	receipt := tl.Executor.SubmitCall(&executor.CallRequest{
		From: ethcommon.HexToAddress(rep.GenesisConfig.Minter),
		To:   ethcommon.HexToAddress(syscommon.TokenContractAddr),
		Data: data,
	})
	require.True(t, receipt.IsSuccess())
	require.Equal(t, uint64(1), receipt.Seq)

	require.Nil(t, tl.Stop())

	// a second start on the same repo resumes instead of rerunning genesis
	ctx2, cancel2 := context.WithCancel(context.Background())
	tl2, err := NewTokenLedger(rep, ctx2, cancel2)
	require.Nil(t, err)
	require.Nil(t, tl2.Start())

	meta = tl2.Ledger.ChainLedger.GetChainMeta()
	require.Equal(t, uint64(1), meta.LatestSeq)
	stored, err := tl2.Ledger.ChainLedger.GetReceipt(1)
	require.Nil(t, err)
	require.Equal(t, token.TransferMethod, stored.Method)

	require.Nil(t, tl2.Stop())
}
