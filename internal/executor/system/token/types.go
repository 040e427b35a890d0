package token

import (
	"fmt"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/axiomesh/token-ledger/pkg/repo"
)

type Config struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *big.Int
	Minter      ethcommon.Address
}

var (
	ErrValue                 = errors.New("invalid value")
	ErrInsufficientBalance   = errors.New("value exceeds balance")
	ErrInsufficientAllowance = errors.New("value exceeds allowance")
	ErrBalanceOverflow       = errors.New("balance exceeds uint256 range")
	ErrEmptyAccount          = errors.New("account is empty")
	ErrMinter                = errors.New("invalid minter account")
)

const (
	TotalSupplyKey = "tokenTotalSupplyKey"
	DecimalsKey    = "tokenDecimalsKey"

	SymbolKey = "tokenSymbolKey"
	NameKey   = "tokenNameKey"

	// BalancesKey is a map stores token balances, mapping(address => uint256)
	BalancesKey = "tokenBalances"
	// AllowancesKey is a map stores approvals, mapping(owner => mapping(spender => uint256))
	AllowancesKey = "tokenAllowances"

	NameMethod         = "name"
	SymbolMethod       = "symbol"
	TotalSupplyMethod  = "totalSupply"
	DecimalsMethod     = "decimals"
	BalanceOfMethod    = "balanceOf"
	TransferMethod     = "transfer"
	ApproveMethod      = "approve"
	AllowanceMethod    = "allowance"
	TransferFromMethod = "transferFrom"

	TransferEvent = "Transfer"
	ApprovalEvent = "Approval"

	// balances, allowances and the total supply live in the unsigned 256-bit range
	maxValueBits = 256
)

// Method2Sig holds the function signature of every dispatchable method. The
// 4-byte calldata selectors are derived from these.
var Method2Sig = map[string]string{
	NameMethod:         "name()",
	SymbolMethod:       "symbol()",
	TotalSupplyMethod:  "totalSupply()",
	DecimalsMethod:     "decimals()",
	BalanceOfMethod:    "balanceOf(address)",
	TransferMethod:     "transfer(address,uint256)",
	ApproveMethod:      "approve(address,uint256)",
	AllowanceMethod:    "allowance(address,address)",
	TransferFromMethod: "transferFrom(address,address,uint256)",
}

var Event2Sig = map[string]string{
	ApprovalEvent: "Approval(address,address,uint256)",
	TransferEvent: "Transfer(address,address,uint256)",
}

func checkValue(value *big.Int) error {
	if value == nil || value.Sign() < 0 || value.BitLen() > maxValueBits {
		return ErrValue
	}
	return nil
}

func getAllowancesKey(owner, spender ethcommon.Address) string {
	return fmt.Sprintf("%s-%s-%s", AllowancesKey, owner.String(), spender.String())
}

func getBalancesKey(owner ethcommon.Address) string {
	return fmt.Sprintf("%s-%s", BalancesKey, owner.String())
}

func GenerateConfig(genesis *repo.GenesisConfig) (Config, error) {
	totalSupply, err := genesis.ParseTotalSupply()
	if err != nil {
		return Config{}, err
	}
	if !ethcommon.IsHexAddress(genesis.Minter) {
		return Config{}, errors.Wrapf(ErrMinter, "not a hex address: %s", genesis.Minter)
	}
	minter := ethcommon.HexToAddress(genesis.Minter)
	if minter == (ethcommon.Address{}) {
		return Config{}, errors.Wrap(ErrMinter, "minter must not be the zero address")
	}
	return Config{
		Name:        genesis.Token.Name,
		Symbol:      genesis.Token.Symbol,
		Decimals:    genesis.Token.Decimals,
		TotalSupply: totalSupply,
		Minter:      minter,
	}, nil
}
