package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axiomesh/token-ledger/internal/executor"
	"github.com/axiomesh/token-ledger/internal/genesis"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/types"
)

const (
	minterAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	admin1Addr = "0xc7F999b83Af6DF9e67d0a37Ee7e900bF38b3D013"
	admin2Addr = "0xE7aEe2a87E7d5129Bd2fBf12fAfF7534Ed146666"
)

func initServer(t *testing.T) *Server {
	rep := repo.MockRepo(t)
	lg, err := ledger.NewMemory(rep)
	require.Nil(t, err)
	require.Nil(t, genesis.Initialize(rep.GenesisConfig, lg))

	exec, err := executor.New(rep, lg)
	require.Nil(t, err)
	require.Nil(t, exec.Start())
	t.Cleanup(func() {
		require.Nil(t, exec.Stop())
	})

	return NewServer(rep, exec, lg)
}

func do(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.Nil(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	var out T
	require.Nil(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestServer_GetToken(t *testing.T) {
	s := initServer(t)

	rec := do(t, s, http.MethodGet, "/api/v1/token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[tokenResponse](t, rec)
	genesisCfg := repo.DefaultGenesisConfig()
	require.Equal(t, genesisCfg.Token.Name, res.Name)
	require.Equal(t, genesisCfg.Token.Symbol, res.Symbol)
	require.Equal(t, genesisCfg.Token.Decimals, res.Decimals)
	require.Equal(t, genesisCfg.Token.TotalSupply, res.TotalSupply)
}

func TestServer_GetBalance(t *testing.T) {
	s := initServer(t)

	t.Run("minter holds the whole supply", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/balance/"+minterAddr, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[balanceResponse](t, rec)
		require.Equal(t, repo.DefaultGenesisConfig().Token.TotalSupply, res.Balance)
	})

	t.Run("unknown account reads zero", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/balance/"+admin1Addr, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[balanceResponse](t, rec)
		require.Equal(t, "0", res.Balance)
	})

	t.Run("invalid address rejected", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/balance/nonsense", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_SubmitCall(t *testing.T) {
	s := initServer(t)

	t.Run("transfer moves balance", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/call", &callRequest{
			From:   minterAddr,
			Method: "transfer",
			Params: []string{admin1Addr, "100"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		receipt := decode[types.Receipt](t, rec)
		require.True(t, receipt.IsSuccess())
		require.Equal(t, uint64(1), receipt.Seq)
		require.Equal(t, "transfer", receipt.Method)
		require.Equal(t, 1, len(receipt.Logs))

		balance := decode[balanceResponse](t, do(t, s, http.MethodGet, "/api/v1/balance/"+admin1Addr, nil))
		require.Equal(t, "100", balance.Balance)
	})

	t.Run("approve then read allowance", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/call", &callRequest{
			From:   minterAddr,
			Method: "approve",
			Params: []string{admin2Addr, "77"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, decode[types.Receipt](t, rec).IsSuccess())

		target := fmt.Sprintf("/api/v1/allowance/%s/%s", minterAddr, admin2Addr)
		allowance := decode[allowanceResponse](t, do(t, s, http.MethodGet, target, nil))
		require.Equal(t, "77", allowance.Allowance)
	})

	t.Run("failed call returns its receipt", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/call", &callRequest{
			From:   admin2Addr,
			Method: "transfer",
			Params: []string{admin1Addr, "1"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		receipt := decode[types.Receipt](t, rec)
		require.False(t, receipt.IsSuccess())
		require.Contains(t, receipt.ErrMsg, "value exceeds balance")
		require.Equal(t, 0, len(receipt.Logs))
	})

	t.Run("rejects malformed requests", func(t *testing.T) {
		for name, req := range map[string]*callRequest{
			"unknown method": {From: minterAddr, Method: "mint", Params: []string{minterAddr, "1"}},
			"bad from":       {From: "not-an-address", Method: "transfer", Params: []string{admin1Addr, "1"}},
			"missing params": {From: minterAddr, Method: "transfer", Params: []string{admin1Addr}},
			"bad address":    {From: minterAddr, Method: "transfer", Params: []string{"bogus", "1"}},
			"bad number":     {From: minterAddr, Method: "transfer", Params: []string{admin1Addr, "ten"}},
			"negative":       {From: minterAddr, Method: "transfer", Params: []string{admin1Addr, "-5"}},
		} {
			rec := do(t, s, http.MethodPost, "/api/v1/call", req)
			require.Equal(t, http.StatusBadRequest, rec.Code, name)
		}
	})

	t.Run("rejects invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/call", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_GetReceipt(t *testing.T) {
	s := initServer(t)

	t.Run("genesis receipt", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/receipt/0", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		receipt := decode[types.Receipt](t, rec)
		require.Equal(t, "construct", receipt.Method)
		require.Equal(t, 1, len(receipt.Logs))
	})

	t.Run("unknown sequence", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/receipt/999", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid sequence", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, "/api/v1/receipt/abc", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Metrics(t *testing.T) {
	s := initServer(t)

	rec := do(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "token_ledger")
}

func TestServer_Lifecycle(t *testing.T) {
	s := initServer(t)
	s.rep.Config.Port.HTTP = 0
	s.server.Addr = ":0"

	require.Nil(t, s.Start())
	defer func() {
		require.Nil(t, s.Stop())
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/token", s.listener.Addr()))
	require.Nil(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
