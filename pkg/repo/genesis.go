package repo

import (
	"math/big"
	"os"
	"path"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type GenesisConfig struct {
	// Timestamp of the construction receipt, unix seconds.
	Timestamp int64  `mapstructure:"timestamp" toml:"timestamp"`
	Minter    string `mapstructure:"minter" toml:"minter"`
	Token     Token  `mapstructure:"token" toml:"token"`
}

type Token struct {
	Name        string `mapstructure:"name" toml:"name"`
	Symbol      string `mapstructure:"symbol" toml:"symbol"`
	Decimals    uint8  `mapstructure:"decimals" toml:"decimals"`
	TotalSupply string `mapstructure:"total_supply" toml:"total_supply"`
}

func DefaultGenesisConfig() *GenesisConfig {
	return &GenesisConfig{
		Timestamp: 1692060400,
		Minter:    "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Token: Token{
			Name:        "Axiom Token",
			Symbol:      "AXT",
			Decimals:    18,
			TotalSupply: "1000000000000000000000000000",
		},
	}
}

// Validate rejects configs the construction path cannot honor: a malformed
// minter address or a supply outside the unsigned 256-bit range.
func (g *GenesisConfig) Validate() error {
	if !ethcommon.IsHexAddress(g.Minter) {
		return errors.Errorf("invalid minter address: %s", g.Minter)
	}
	if _, err := g.ParseTotalSupply(); err != nil {
		return err
	}
	if g.Token.Name == "" || g.Token.Symbol == "" {
		return errors.New("token name and symbol are required")
	}
	return nil
}

func (g *GenesisConfig) ParseTotalSupply() (*big.Int, error) {
	supply, ok := new(big.Int).SetString(g.Token.TotalSupply, 10)
	if !ok {
		return nil, errors.Errorf("invalid total supply: %s", g.Token.TotalSupply)
	}
	if supply.Sign() < 0 {
		return nil, errors.Errorf("total supply below zero: %s", g.Token.TotalSupply)
	}
	if supply.BitLen() > 256 {
		return nil, errors.Errorf("total supply exceeds uint256 range: %s", g.Token.TotalSupply)
	}
	return supply, nil
}

func LoadGenesisConfig(repoRoot string) (*GenesisConfig, error) {
	genesis, err := func() (*GenesisConfig, error) {
		genesis := DefaultGenesisConfig()
		cfgPath := path.Join(repoRoot, genesisCfgFileName)
		if !FileExist(cfgPath) {
			err := os.MkdirAll(repoRoot, 0755)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build default config")
			}

			if err := writeConfigWithEnv(cfgPath, genesis); err != nil {
				return nil, errors.Wrap(err, "failed to build default genesis config")
			}
		} else {
			if err := CheckWritable(repoRoot); err != nil {
				return nil, err
			}
			if err := readConfigFromFile(cfgPath, genesis); err != nil {
				return nil, err
			}
		}

		return genesis, nil
	}()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load genesis config")
	}
	if err := genesis.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid genesis config")
	}
	return genesis, nil
}
