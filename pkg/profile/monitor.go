package profile

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

const shutdownTimeout = 2 * time.Second

// Monitor serves the prometheus metrics endpoint on the monitor port.
type Monitor struct {
	config   *repo.Config
	server   *http.Server
	listener net.Listener
	logger   logrus.FieldLogger
}

func NewMonitor(config *repo.Config) (*Monitor, error) {
	router := http.NewServeMux()
	router.Handle("/metrics", promhttp.Handler())

	return &Monitor{
		config: config,
		logger: loggers.Logger(loggers.App),
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.Port.Monitor),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (m *Monitor) Start() error {
	if !m.config.Monitor.Enable {
		return nil
	}

	ln, err := net.Listen("tcp", m.server.Addr)
	if err != nil {
		return fmt.Errorf("monitor listen: %w", err)
	}
	m.listener = ln

	go func() {
		if err := m.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.WithField("err", err).Error("Monitor serve failed")
		}
	}()

	m.logger.WithField("port", m.config.Port.Monitor).Info("Monitor enabled")
	return nil
}

func (m *Monitor) Stop() error {
	if !m.config.Monitor.Enable || m.listener == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return m.server.Shutdown(ctx)
}
