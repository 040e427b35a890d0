package token

import (
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/sha3"

	"github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var _ common.SystemContract = (*Manager)(nil)

type byter interface {
	Bytes() []byte
}

// Manager is the fungible token ledger. All token state lives in the
// contract account: balances, allowances and the token metadata written at
// genesis. Failed operations leave no trace, the host discards dirty state
// and no log is recorded.
type Manager struct {
	logger      logrus.FieldLogger
	account     ledger.IAccount
	msgFrom     ethcommon.Address
	stateLedger ledger.StateLedger
	currentLogs *[]common.Log
}

func New(cfg *common.SystemContractConfig) *Manager {
	return &Manager{
		logger: cfg.Logger,
	}
}

func (mgr *Manager) SetContext(context *common.VMContext) {
	mgr.account = context.StateLedger.GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr))
	mgr.stateLedger = context.StateLedger
	mgr.msgFrom = *context.CurrentUser
	mgr.currentLogs = context.CurrentLogs
}

// Init writes the token metadata and mints the whole supply to the minter.
// The mint is announced as a Transfer with the zero address on the from
// side, the only time that address ever appears there.
func Init(lg ledger.StateLedger, config Config) error {
	if config.Minter == (ethcommon.Address{}) {
		return ErrMinter
	}
	if err := checkValue(config.TotalSupply); err != nil {
		return err
	}

	contractAccount := lg.GetOrCreateAccount(ethcommon.HexToAddress(common.TokenContractAddr))
	contractAccount.SetState([]byte(NameKey), []byte(config.Name))
	contractAccount.SetState([]byte(SymbolKey), []byte(config.Symbol))
	contractAccount.SetState([]byte(DecimalsKey), []byte{config.Decimals})
	contractAccount.SetState([]byte(TotalSupplyKey), config.TotalSupply.Bytes())
	contractAccount.SetState([]byte(getBalancesKey(config.Minter)), config.TotalSupply.Bytes())

	mintLog := buildEventLog(TransferEvent, []byter{ethcommon.Address{}}, []byter{config.Minter, config.TotalSupply})
	lg.AddLog(&types.Log{
		Address: mintLog.Address,
		Topics:  mintLog.Topics,
		Data:    mintLog.Data,
	})
	return nil
}

func (mgr *Manager) Name() string {
	ok, name := mgr.account.GetState([]byte(NameKey))
	if !ok {
		return ""
	}
	return string(name)
}

func (mgr *Manager) Symbol() string {
	ok, symbol := mgr.account.GetState([]byte(SymbolKey))
	if !ok {
		return ""
	}
	return string(symbol)
}

func (mgr *Manager) Decimals() uint8 {
	ok, decimals := mgr.account.GetState([]byte(DecimalsKey))
	if !ok {
		return 0
	}
	return decimals[0]
}

func (mgr *Manager) TotalSupply() *big.Int {
	ok, totalSupply := mgr.account.GetState([]byte(TotalSupplyKey))
	if !ok {
		return big.NewInt(0)
	}
	return new(big.Int).SetBytes(totalSupply)
}

// BalanceOf returns the balance of the account, zero if it never held tokens
func (mgr *Manager) BalanceOf(account ethcommon.Address) *big.Int {
	return mgr.balanceOf(account)
}

func (mgr *Manager) balanceOf(account ethcommon.Address) *big.Int {
	if ok, balanceBytes := mgr.account.GetState([]byte(getBalancesKey(account))); ok {
		return new(big.Int).SetBytes(balanceBytes)
	}
	return big.NewInt(0)
}

// Allowance returns what spender may still withdraw from owner, zero when no
// approval was ever made
func (mgr *Manager) Allowance(owner, spender ethcommon.Address) *big.Int {
	return mgr.getAllowance(owner, spender)
}

func (mgr *Manager) getAllowance(owner, spender ethcommon.Address) *big.Int {
	if ok, v := mgr.account.GetState([]byte(getAllowancesKey(owner, spender))); ok {
		return new(big.Int).SetBytes(v)
	}
	return big.NewInt(0)
}

func (mgr *Manager) Approve(spender ethcommon.Address, value *big.Int) error {
	return mgr.approve(mgr.msgFrom, spender, value)
}

// approve overwrites any previous allowance, values do not accumulate
func (mgr *Manager) approve(owner, spender ethcommon.Address, value *big.Int) error {
	if err := checkValue(value); err != nil {
		return err
	}

	mgr.account.SetState([]byte(getAllowancesKey(owner, spender)), value.Bytes())
	mgr.recordLog(ApprovalEvent, []byter{owner, spender}, []byter{value})
	return nil
}

func (mgr *Manager) Transfer(recipient ethcommon.Address, value *big.Int) error {
	return mgr.transfer(mgr.msgFrom, recipient, value)
}

// TransferFrom moves value from sender to recipient on the strength of an
// earlier approval. The allowance is checked before the balance, and the
// spent part is written down only after the balance move went through.
func (mgr *Manager) TransferFrom(sender, recipient ethcommon.Address, value *big.Int) error {
	if err := checkValue(value); err != nil {
		return err
	}

	// allowance for <sender, msgFrom>
	allowance := mgr.getAllowance(sender, mgr.msgFrom)
	if allowance.Cmp(value) < 0 {
		return ErrInsufficientAllowance
	}

	if err := mgr.transfer(sender, recipient, value); err != nil {
		return err
	}

	// the decrement is silent, only approve itself announces allowance changes
	mgr.account.SetState([]byte(getAllowancesKey(sender, mgr.msgFrom)), new(big.Int).Sub(allowance, value).Bytes())
	return nil
}

func (mgr *Manager) transfer(sender, recipient ethcommon.Address, value *big.Int) error {
	if err := checkValue(value); err != nil {
		return err
	}
	if sender == (ethcommon.Address{}) || recipient == (ethcommon.Address{}) {
		return ErrEmptyAccount
	}

	senderBalance := mgr.balanceOf(sender)
	if senderBalance.Cmp(value) < 0 {
		return ErrInsufficientBalance
	}
	// only a credit between distinct accounts can overflow, a self transfer
	// settles at the unchanged balance
	if sender != recipient {
		if new(big.Int).Add(mgr.balanceOf(recipient), value).BitLen() > maxValueBits {
			return ErrBalanceOverflow
		}
	}

	mgr.account.SetState([]byte(getBalancesKey(sender)), new(big.Int).Sub(senderBalance, value).Bytes())
	// read back after the sender write so a self transfer nets out
	receiverBalance := mgr.balanceOf(recipient)
	mgr.account.SetState([]byte(getBalancesKey(recipient)), new(big.Int).Add(receiverBalance, value).Bytes())

	mgr.recordLog(TransferEvent, []byter{sender}, []byter{recipient, value})
	return nil
}

// recordLog appends an event log to the current call context. The host only
// flushes these into the receipt when the call succeeds.
func (mgr *Manager) recordLog(event string, topics []byter, data []byter) {
	*mgr.currentLogs = append(*mgr.currentLogs, buildEventLog(event, topics, data))
}

// buildEventLog assembles a log in the ABI event layout: topic 0 is the
// keccak256 hash of the event signature, further topics carry the indexed
// fields, everything else is packed 32-byte aligned into the data section.
func buildEventLog(event string, topics []byter, data []byter) common.Log {
	sigHash := sha3.NewLegacyKeccak256()
	sigHash.Write([]byte(Event2Sig[event]))

	currentLog := common.Log{
		Address: ethcommon.HexToAddress(common.TokenContractAddr),
	}
	currentLog.Topics = append(currentLog.Topics, ethcommon.BytesToHash(sigHash.Sum(nil)))
	for _, topic := range topics {
		currentLog.Topics = append(currentLog.Topics, ethcommon.BytesToHash(topic.Bytes()))
	}
	var currentData []byte
	for _, d := range data {
		currentData = append(currentData, ethcommon.BytesToHash(d.Bytes()).Bytes()...)
	}
	currentLog.Data = currentData

	return currentLog
}
