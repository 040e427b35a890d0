package system

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/executor/system/token"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/types"
)

var (
	ErrNotExistSystemContract         = errors.New("not exist this system contract")
	ErrNotExistMethodName             = errors.New("not exist method name of this system contract")
	ErrNotExistSystemContractABI      = errors.New("not exist this system contract abi")
	ErrNotDeploySystemContract        = errors.New("not deploy this system contract")
	ErrNotImplementFuncSystemContract = errors.New("not implement the function for this system contract")
)

//go:embed sol/TokenManager.abi
var tokenManagerABI string

var tokenABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(tokenManagerABI))
	if err != nil {
		panic(err)
	}
	return parsed
}()

// TokenABI is the parsed interface of the token manager contract.
func TokenABI() abi.ABI {
	return tokenABI
}

// PackTokenInput encodes calldata for a token manager method: the 4-byte
// selector followed by the ABI-packed arguments.
func PackTokenInput(methodName string, args ...any) ([]byte, error) {
	return tokenABI.Pack(methodName, args...)
}

// UnpackTokenOutput decodes the return data of a token manager method.
func UnpackTokenOutput(methodName string, data []byte) ([]any, error) {
	method, ok := tokenABI.Methods[methodName]
	if !ok {
		return nil, ErrNotExistMethodName
	}
	return method.Outputs.Unpack(data)
}

var _ common.VirtualMachine = (*NativeVM)(nil)

// NativeVM routes ABI-encoded calls onto registered system contracts. It
// decodes calldata into Go values, invokes the matching contract method via
// reflection and encodes the results back into ABI return data.
type NativeVM struct {
	logger      logrus.FieldLogger
	stateLedger ledger.StateLedger
	currentLogs []common.Log
	currentSeq  uint64
	from        ethcommon.Address
	to          *ethcommon.Address

	// contract address mapping to method signature
	contract2MethodSig map[string]map[string][]byte
	// contract address mapping to contract abi
	contract2ABI map[string]abi.ABI
	// contract address mapping to contact instance
	contract2Instance map[string]common.SystemContract
}

func New() common.VirtualMachine {
	nvm := &NativeVM{
		logger:             loggers.Logger(loggers.SystemContract),
		contract2MethodSig: make(map[string]map[string][]byte),
		contract2ABI:       make(map[string]abi.ABI),
		contract2Instance:  make(map[string]common.SystemContract),
	}

	cfg := &common.SystemContractConfig{
		Logger: nvm.logger,
	}

	nvm.Deploy(common.TokenContractAddr, tokenManagerABI, token.Method2Sig, token.New(cfg))

	return nvm
}

func (nvm *NativeVM) View() common.VirtualMachine {
	return &NativeVM{
		logger:             nvm.logger,
		contract2MethodSig: nvm.contract2MethodSig,
		contract2ABI:       nvm.contract2ABI,
		contract2Instance:  nvm.contract2Instance,
	}
}

func (nvm *NativeVM) Deploy(addr string, abiFile string, method2Sig map[string]string, instance common.SystemContract) {
	// check system contract range
	if addr < common.SystemContractStartAddr || addr > common.SystemContractEndAddr {
		panic(fmt.Sprintf("this system contract %s is out of range", addr))
	}

	if _, ok := nvm.contract2Instance[addr]; ok {
		panic("deploy system contract repeated")
	}
	nvm.contract2Instance[addr] = instance

	contractABI, err := abi.JSON(strings.NewReader(abiFile))
	if err != nil {
		panic(err)
	}
	nvm.contract2ABI[addr] = contractABI

	m2sig := make(map[string][]byte)
	for methodName, methodSig := range method2Sig {
		m2sig[methodName] = crypto.Keccak256([]byte(methodSig))
	}
	nvm.contract2MethodSig[addr] = m2sig
}

func (nvm *NativeVM) Reset(currentSeq uint64, stateLedger ledger.StateLedger, from ethcommon.Address, to *ethcommon.Address) {
	nvm.stateLedger = stateLedger
	nvm.currentSeq = currentSeq
	nvm.currentLogs = make([]common.Log, 0)
	nvm.from = from
	nvm.to = to
}

func (nvm *NativeVM) Run(data []byte) (execResult []byte, execErr error) {
	// logs reach the ledger only when the call succeeds, a failed call must
	// leave no observable trace
	defer func() {
		if execErr == nil {
			nvm.saveLogs()
		}
	}()
	defer func() {
		if err := recover(); err != nil {
			nvm.logger.Error(err)
			execErr = fmt.Errorf("%s", err)
		}
	}()

	if nvm.to == nil {
		return nil, ErrNotExistSystemContract
	}

	contractAddr := nvm.to.Hex()
	methodName, err := nvm.getMethodName(contractAddr, data)
	if err != nil {
		return nil, err
	}
	contractInstance, ok := nvm.contract2Instance[contractAddr]
	if !ok {
		return nil, ErrNotDeploySystemContract
	}

	// context must be in place before the method runs
	contractInstance.SetContext(&common.VMContext{
		StateLedger: nvm.stateLedger,
		CurrentSeq:  nvm.currentSeq,
		CurrentLogs: &nvm.currentLogs,
		CurrentUser: &nvm.from,
	})

	// method name may be transfer, but we implement Transfer
	// capitalize the first letter of a function
	funcName := methodName
	if len(methodName) >= 2 {
		funcName = fmt.Sprintf("%s%s", strings.ToUpper(methodName[:1]), methodName[1:])
	}
	nvm.logger.Debugf("run system contract method name: %s\n", funcName)
	method := reflect.ValueOf(contractInstance).MethodByName(funcName)
	if !method.IsValid() {
		return nil, ErrNotImplementFuncSystemContract
	}
	args, err := nvm.parseArgs(contractAddr, data, methodName)
	if err != nil {
		return nil, err
	}
	var inputs []reflect.Value
	for _, arg := range args {
		inputs = append(inputs, reflect.ValueOf(arg))
	}
	// maybe panic when inputs mismatch, but we recover
	results := method.Call(inputs)

	var returnRes []any
	var returnErr error
	for _, result := range results {
		// basic type(such as bool, number, string, can't call isNil)
		if result.CanInt() || result.CanFloat() || result.CanUint() || result.Kind() == reflect.Bool || result.Kind() == reflect.String {
			returnRes = append(returnRes, result.Interface())
			continue
		}

		if result.IsNil() {
			continue
		}
		if err, ok := result.Interface().(error); ok {
			returnErr = err
			break
		}
		returnRes = append(returnRes, result.Interface())
	}

	nvm.logger.Debugf("Contract addr: %s, method name: %s, return result: %+v, return error: %s", contractAddr, methodName, returnRes, returnErr)

	if returnErr != nil {
		return nil, returnErr
	}

	if returnRes != nil {
		return nvm.packOutputArgs(contractAddr, methodName, returnRes...)
	}
	return nil, nil
}

// MethodName resolves the calldata selector against the deployed contract,
// empty when unknown. Receipts are labeled with it.
func (nvm *NativeVM) MethodName(addr ethcommon.Address, data []byte) string {
	methodName, err := nvm.getMethodName(addr.Hex(), data)
	if err != nil {
		return ""
	}
	return methodName
}

// getMethodName matches the leading 4 bytes of the calldata against the
// keccak256 selectors registered for the contract.
func (nvm *NativeVM) getMethodName(contractAddr string, data []byte) (string, error) {
	if len(data) < 4 {
		return "", ErrNotExistMethodName
	}

	method2Sig, ok := nvm.contract2MethodSig[contractAddr]
	if !ok {
		return "", ErrNotExistSystemContract
	}

	for methodName, methodSig := range method2Sig {
		if bytes.Equal(methodSig[:4], data[:4]) {
			return methodName, nil
		}
	}

	return "", ErrNotExistMethodName
}

func (nvm *NativeVM) lookupMethod(contractAddr, methodName string) (abi.Method, error) {
	contractABI, ok := nvm.contract2ABI[contractAddr]
	if !ok {
		return abi.Method{}, ErrNotExistSystemContractABI
	}
	method, ok := contractABI.Methods[methodName]
	if !ok {
		return abi.Method{}, fmt.Errorf("system contract abi: could not locate named method: %s", methodName)
	}
	return method, nil
}

// parseArgs decodes the calldata after the selector into Go values following
// the input types the ABI declares for the method.
func (nvm *NativeVM) parseArgs(contractAddr string, data []byte, methodName string) ([]any, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("msg data length is not improperly formatted: %q - Bytes: %+v", data, data)
	}
	msgData := data[4:]

	method, err := nvm.lookupMethod(contractAddr, methodName)
	if err != nil {
		return nil, err
	}
	if len(msgData)%32 != 0 {
		return nil, fmt.Errorf("system contract abi: improperly formatted calldata: %q - Bytes: %+v", msgData, msgData)
	}

	return method.Inputs.Unpack(msgData)
}

func (nvm *NativeVM) packOutputArgs(contractAddr, methodName string, outputArgs ...any) ([]byte, error) {
	method, err := nvm.lookupMethod(contractAddr, methodName)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(outputArgs...)
}

// saveLogs moves the logs recorded during the call into the state ledger
func (nvm *NativeVM) saveLogs() {
	nvm.logger.Debugf("logs: %+v", nvm.currentLogs)

	for _, currentLog := range nvm.currentLogs {
		nvm.stateLedger.AddLog(&types.Log{
			Address: currentLog.Address,
			Topics:  currentLog.Topics,
			Data:    currentLog.Data,
			Removed: currentLog.Removed,
		})
	}
}

func (nvm *NativeVM) IsSystemContract(addr ethcommon.Address) bool {
	_, ok := nvm.contract2Instance[addr.Hex()]
	return ok
}

func (nvm *NativeVM) GetContractInstance(addr ethcommon.Address) common.SystemContract {
	return nvm.contract2Instance[addr.Hex()]
}

// InitGenesisData writes the construction state of the system contracts, for
// the token manager that is the metadata and the initial mint.
func InitGenesisData(genesis *repo.GenesisConfig, lg ledger.StateLedger) error {
	tokenConfig, err := token.GenerateConfig(genesis)
	if err != nil {
		return err
	}
	return token.Init(lg, tokenConfig)
}
