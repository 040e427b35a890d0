package genesis

import (
	"encoding/json"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/axiomesh/token-ledger/internal/executor/system"
	syscommon "github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var (
	genesisConfigKey = []byte("genesis_cfg")
)

// constructMethod labels the sequence-zero receipt.
const constructMethod = "construct"

// Initialize seeds the token state from the genesis config and persists the
// sequence-zero receipt carrying the mint log.
func Initialize(genesis *repo.GenesisConfig, lg *ledger.Ledger) error {
	lg.StateLedger.SetTxContext(0)

	if err := initializeGenesisConfig(genesis, lg.StateLedger); err != nil {
		lg.StateLedger.Clear()
		return err
	}

	if err := system.InitGenesisData(genesis, lg.StateLedger); err != nil {
		lg.StateLedger.Clear()
		return err
	}

	lg.StateLedger.Finalise()
	logs := lg.StateLedger.GetLogs()
	if err := lg.StateLedger.Commit(); err != nil {
		return err
	}

	lg.PersistReceipt(&types.Receipt{
		Seq:    0,
		From:   ethcommon.HexToAddress(genesis.Minter),
		Method: constructMethod,
		Status: types.ReceiptSUCCESS,
		Logs:   logs,
	})

	return nil
}

// IsInitialized reports whether the ledger already carries a genesis state.
func IsInitialized(lg *ledger.Ledger) bool {
	account := lg.StateLedger.GetAccount(ethcommon.HexToAddress(syscommon.ZeroAddress))
	if account == nil {
		return false
	}
	exists, _ := account.GetState(genesisConfigKey)
	return exists
}

func initializeGenesisConfig(genesis *repo.GenesisConfig, lg ledger.StateLedger) error {
	account := lg.GetOrCreateAccount(ethcommon.HexToAddress(syscommon.ZeroAddress))

	genesisCfg, err := json.Marshal(genesis)
	if err != nil {
		return err
	}
	account.SetState(genesisConfigKey, genesisCfg)
	return nil
}

// GetGenesisConfig retrieves the genesis configuration from the given ledger.
func GetGenesisConfig(lg *ledger.Ledger) (*repo.GenesisConfig, error) {
	account := lg.StateLedger.GetAccount(ethcommon.HexToAddress(syscommon.ZeroAddress))
	if account == nil {
		return nil, nil
	}

	exists, raw := account.GetState(genesisConfigKey)
	if !exists {
		return nil, nil
	}

	genesis := &repo.GenesisConfig{}
	if err := json.Unmarshal(raw, genesis); err != nil {
		return nil, err
	}

	return genesis, nil
}
