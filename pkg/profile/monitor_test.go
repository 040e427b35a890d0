package profile

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/axiomesh/token-ledger/pkg/repo"
)

func TestMonitor(t *testing.T) {
	rep := repo.MockRepo(t)
	rep.Config.Monitor.Enable = true
	rep.Config.Port.Monitor = 0

	monitor, err := NewMonitor(rep.Config)
	require.Nil(t, err)
	require.Nil(t, monitor.Start())
	defer func() {
		require.Nil(t, monitor.Stop())
	}()

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", monitor.listener.Addr()))
	require.Nil(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	require.Contains(t, string(body), "go_goroutines")
}

func TestMonitorDisabled(t *testing.T) {
	rep := repo.MockRepo(t)
	rep.Config.Monitor.Enable = false

	monitor, err := NewMonitor(rep.Config)
	require.Nil(t, err)
	require.Nil(t, monitor.Start())
	require.Nil(t, monitor.listener)
	require.Nil(t, monitor.Stop())
}
