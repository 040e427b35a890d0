package app

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/ethereum/go-ethereum/common/fdlimit"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/executor"
	"github.com/axiomesh/token-ledger/internal/genesis"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/internal/storagemgr"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

type TokenLedger struct {
	Ctx    context.Context
	Cancel context.CancelFunc
	Repo   *repo.Repo
	logger logrus.FieldLogger

	Ledger   *ledger.Ledger
	Executor executor.Executor
}

// PrepareTokenLedger registers the storage builders and raises the fd limit.
func PrepareTokenLedger(rep *repo.Repo) error {
	if err := storagemgr.Initialize(rep.Config.Storage.KvType, rep.Config.Storage.KvCacheSize, rep.Config.Storage.Sync); err != nil {
		return fmt.Errorf("storagemgr initialize: %w", err)
	}
	if err := raiseUlimit(rep.Config.Ulimit); err != nil {
		return fmt.Errorf("raise ulimit: %w", err)
	}
	return nil
}

func NewTokenLedger(rep *repo.Repo, ctx context.Context, cancel context.CancelFunc) (*TokenLedger, error) {
	if err := PrepareTokenLedger(rep); err != nil {
		return nil, err
	}

	logger := loggers.Logger(loggers.App)

	rwLdg, err := ledger.NewLedger(rep)
	if err != nil {
		return nil, fmt.Errorf("create RW ledger: %w", err)
	}

	if rwLdg.ChainLedger.GetChainMeta() == nil {
		if err := genesis.Initialize(rep.GenesisConfig, rwLdg); err != nil {
			return nil, err
		}
		logger.WithFields(logrus.Fields{
			"minter": rep.GenesisConfig.Minter,
			"symbol": rep.GenesisConfig.Token.Symbol,
			"supply": rep.GenesisConfig.Token.TotalSupply,
		}).Info("Initialize genesis")
	} else {
		// a restarted node reads its genesis config back from the ledger, the
		// file on disk may have drifted since the first start
		genesisCfg, err := genesis.GetGenesisConfig(rwLdg)
		if err != nil {
			return nil, err
		}
		if genesisCfg != nil {
			rep.GenesisConfig = genesisCfg
		}
	}

	txExec, err := executor.New(rep, rwLdg)
	if err != nil {
		return nil, fmt.Errorf("create CallExecutor: %w", err)
	}

	return &TokenLedger{
		Ctx:    ctx,
		Cancel: cancel,
		Repo:   rep,
		logger: logger,

		Ledger:   rwLdg,
		Executor: txExec,
	}, nil
}

func (tl *TokenLedger) Start() error {
	if err := tl.Executor.Start(); err != nil {
		return fmt.Errorf("call executor start: %w", err)
	}

	tl.start()

	tl.printLogo()

	return nil
}

func (tl *TokenLedger) Stop() error {
	if err := tl.Executor.Stop(); err != nil {
		return fmt.Errorf("call executor stop: %w", err)
	}
	tl.Cancel()

	tl.logger.Infof("%s stopped", repo.AppName)

	return nil
}

func (tl *TokenLedger) printLogo() {
	fig := figure.NewFigure(repo.AppName, "slant", true)
	tl.logger.Infof(`
=========================================================================================
%s
=========================================================================================
`, fig.String())
}

func raiseUlimit(limitNew uint64) error {
	_, err := fdlimit.Raise(limitNew)
	if err != nil {
		return fmt.Errorf("set limit failed: %w", err)
	}

	var limit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &limit); err != nil {
		return fmt.Errorf("getrlimit error: %w", err)
	}

	if limit.Cur != limitNew && limit.Cur != limit.Max {
		return errors.New("failed to raise ulimit")
	}

	return nil
}
