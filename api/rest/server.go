package rest

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/executor"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// Server exposes the token ledger over HTTP. Reads run as read-only calls
// against the committed state, writes go through the call executor and are
// answered with the persisted receipt.
type Server struct {
	rep      *repo.Repo
	executor executor.Executor
	ledger   *ledger.Ledger
	router   *mux.Router
	server   *http.Server
	listener net.Listener
	logger   logrus.FieldLogger
}

func NewServer(rep *repo.Repo, exec executor.Executor, lg *ledger.Ledger) *Server {
	s := &Server{
		rep:      rep,
		executor: exec,
		ledger:   lg,
		router:   mux.NewRouter(),
		logger:   loggers.Logger(loggers.API),
	}
	s.registerRoutes()

	s.server = &http.Server{
		Addr: fmt.Sprintf(":%d", rep.Config.Port.HTTP),
		Handler: cors.New(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}).Handler(s.router),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s
}

func (s *Server) registerRoutes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/token", s.getToken).Methods(http.MethodGet)
	api.HandleFunc("/balance/{address}", s.getBalance).Methods(http.MethodGet)
	api.HandleFunc("/allowance/{owner}/{spender}", s.getAllowance).Methods(http.MethodGet)
	api.HandleFunc("/call", s.submitCall).Methods(http.MethodPost)
	api.HandleFunc("/receipt/{seq}", s.getReceipt).Methods(http.MethodGet)

	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("rest listen: %w", err)
	}
	s.listener = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.WithField("err", err).Error("REST serve failed")
		}
	}()

	s.logger.WithField("port", s.rep.Config.Port.HTTP).Info("REST service started")
	return nil
}

func (s *Server) Stop() error {
	if s.listener == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("REST service stopped")
	return nil
}
