package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/executor"
	"github.com/axiomesh/token-ledger/internal/executor/system"
	syscommon "github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/executor/system/token"
	"github.com/axiomesh/token-ledger/internal/ledger"
)

type callRequest struct {
	From   string   `json:"from"`
	Method string   `json:"method"`
	Params []string `json:"params"`
}

type tokenResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply string `json:"total_supply"`
}

type balanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

type allowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithField("err", err).Error("Encode response failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// queryToken runs one read-only contract call and unpacks its outputs.
func (s *Server) queryToken(from ethcommon.Address, method string, args ...any) ([]any, error) {
	data, err := system.PackTokenInput(method, args...)
	if err != nil {
		return nil, err
	}

	ret, err := s.executor.QueryCall(&executor.CallRequest{
		From: from,
		To:   ethcommon.HexToAddress(syscommon.TokenContractAddr),
		Data: data,
	})
	if err != nil {
		return nil, err
	}

	return system.UnpackTokenOutput(method, ret)
}

func (s *Server) getToken(w http.ResponseWriter, r *http.Request) {
	var from ethcommon.Address

	name, err := s.queryToken(from, token.NameMethod)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	symbol, err := s.queryToken(from, token.SymbolMethod)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	decimals, err := s.queryToken(from, token.DecimalsMethod)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	totalSupply, err := s.queryToken(from, token.TotalSupplyMethod)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &tokenResponse{
		Name:        name[0].(string),
		Symbol:      symbol[0].(string),
		Decimals:    decimals[0].(uint8),
		TotalSupply: totalSupply[0].(*big.Int).String(),
	})
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["address"]
	if !ethcommon.IsHexAddress(raw) {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid address: %s", raw))
		return
	}
	addr := ethcommon.HexToAddress(raw)

	res, err := s.queryToken(addr, token.BalanceOfMethod, addr)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &balanceResponse{
		Address: addr.Hex(),
		Balance: res[0].(*big.Int).String(),
	})
}

func (s *Server) getAllowance(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	for _, raw := range []string{vars["owner"], vars["spender"]} {
		if !ethcommon.IsHexAddress(raw) {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid address: %s", raw))
			return
		}
	}
	owner := ethcommon.HexToAddress(vars["owner"])
	spender := ethcommon.HexToAddress(vars["spender"])

	res, err := s.queryToken(owner, token.AllowanceMethod, owner, spender)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &allowanceResponse{
		Owner:     owner.Hex(),
		Spender:   spender.Hex(),
		Allowance: res[0].(*big.Int).String(),
	})
}

func (s *Server) submitCall(w http.ResponseWriter, r *http.Request) {
	var req callRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.New("invalid call format"))
		return
	}
	if !ethcommon.IsHexAddress(req.From) {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid from address: %s", req.From))
		return
	}

	data, err := s.packCall(req.Method, req.Params)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	receipt := s.executor.SubmitCall(&executor.CallRequest{
		From: ethcommon.HexToAddress(req.From),
		To:   ethcommon.HexToAddress(syscommon.TokenContractAddr),
		Data: data,
	})

	s.logger.WithFields(logrus.Fields{
		"seq":    receipt.Seq,
		"method": receipt.Method,
		"status": receipt.Status,
	}).Info("Submitted call")
	s.writeJSON(w, http.StatusOK, receipt)
}

// packCall converts the string params of an API call into the typed arguments
// the contract ABI expects and packs the calldata. Numbers travel as decimal
// strings, JSON numbers cannot carry uint256 precision.
func (s *Server) packCall(methodName string, params []string) ([]byte, error) {
	method, ok := system.TokenABI().Methods[methodName]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", methodName)
	}
	if len(params) != len(method.Inputs) {
		expected := lo.Map(method.Inputs, func(arg abi.Argument, _ int) string {
			return arg.Type.String()
		})
		return nil, fmt.Errorf("method %s expects %d params (%s), got %d",
			methodName, len(method.Inputs), strings.Join(expected, ","), len(params))
	}

	args := make([]any, len(params))
	for i, input := range method.Inputs {
		switch input.Type.T {
		case abi.AddressTy:
			if !ethcommon.IsHexAddress(params[i]) {
				return nil, fmt.Errorf("param %d: invalid address: %s", i, params[i])
			}
			args[i] = ethcommon.HexToAddress(params[i])
		case abi.UintTy:
			value, ok := new(big.Int).SetString(params[i], 10)
			if !ok {
				return nil, fmt.Errorf("param %d: invalid number: %s", i, params[i])
			}
			if value.Sign() < 0 || value.BitLen() > 256 {
				return nil, fmt.Errorf("param %d: number out of uint256 range: %s", i, params[i])
			}
			args[i] = value
		default:
			return nil, fmt.Errorf("param %d: unsupported type: %s", i, input.Type.String())
		}
	}

	return system.PackTokenInput(methodName, args...)
}

func (s *Server) getReceipt(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["seq"]
	seq, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid sequence: %s", raw))
		return
	}

	receipt, err := s.ledger.ChainLedger.GetReceipt(seq)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			s.writeError(w, http.StatusNotFound, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	s.writeJSON(w, http.StatusOK, receipt)
}
