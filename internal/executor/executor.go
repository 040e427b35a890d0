package executor

import (
	"context"

	"github.com/ethereum/go-ethereum/event"
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/internal/executor/system"
	syscommon "github.com/axiomesh/token-ledger/internal/executor/system/common"
	"github.com/axiomesh/token-ledger/internal/ledger"
	"github.com/axiomesh/token-ledger/pkg/events"
	"github.com/axiomesh/token-ledger/pkg/loggers"
	"github.com/axiomesh/token-ledger/pkg/repo"
	"github.com/axiomesh/token-ledger/pkg/types"
)

const callChanNumber = 1024

var _ Executor = (*CallExecutor)(nil)

// CallExecutor owns the write path of the ledger. Every state-changing call
// funnels through one loop, so each call runs against the state exclusively
// and receives a receipt sequence with no gaps.
type CallExecutor struct {
	ledger     *ledger.Ledger
	logger     logrus.FieldLogger
	callC      chan *callTask
	currentSeq uint64
	callFeed   event.Feed
	logsFeed   event.Feed

	nvm syscommon.VirtualMachine
	rep *repo.Repo

	ctx    context.Context
	cancel context.CancelFunc
}

type callTask struct {
	call  *CallRequest
	query bool
	respC chan *callResult
}

type callResult struct {
	receipt *types.Receipt
	ret     []byte
	err     error
}

// New creates executor instance
func New(rep *repo.Repo, ledger *ledger.Ledger) (*CallExecutor, error) {
	ctx, cancel := context.WithCancel(context.Background())

	callExecutor := &CallExecutor{
		ledger: ledger,
		logger: loggers.Logger(loggers.Executor),
		callC:  make(chan *callTask, callChanNumber),
		nvm:    system.New(),
		rep:    rep,
		ctx:    ctx,
		cancel: cancel,
	}
	if meta := ledger.ChainLedger.GetChainMeta(); meta != nil {
		callExecutor.currentSeq = meta.LatestSeq
	}

	return callExecutor, nil
}

func (exec *CallExecutor) Start() error {
	go exec.listenExecuteEvent()

	exec.logger.WithFields(logrus.Fields{
		"seq": exec.currentSeq,
	}).Infof("Executor started")
	return nil
}

func (exec *CallExecutor) Stop() error {
	exec.cancel()

	exec.logger.Info("Executor stopped")
	return nil
}

// SubmitCall blocks until the call has run and its receipt is persisted.
// Callers must not submit after Stop.
func (exec *CallExecutor) SubmitCall(call *CallRequest) *types.Receipt {
	task := &callTask{call: call, respC: make(chan *callResult, 1)}
	exec.callC <- task
	res := <-task.respC
	return res.receipt
}

// QueryCall serializes a read-only call through the same loop as writes, so
// it never observes half-applied state.
func (exec *CallExecutor) QueryCall(call *CallRequest) ([]byte, error) {
	task := &callTask{call: call, query: true, respC: make(chan *callResult, 1)}
	exec.callC <- task
	res := <-task.respC
	return res.ret, res.err
}

// SubscribeCallEvent registers a subscription of CallExecutedEvent.
func (exec *CallExecutor) SubscribeCallEvent(ch chan<- events.CallExecutedEvent) event.Subscription {
	return exec.callFeed.Subscribe(ch)
}

// SubscribeLogsEvent registers a subscription of []*types.Log.
func (exec *CallExecutor) SubscribeLogsEvent(ch chan<- []*types.Log) event.Subscription {
	return exec.logsFeed.Subscribe(ch)
}

func (exec *CallExecutor) listenExecuteEvent() {
	for {
		select {
		case <-exec.ctx.Done():
			exec.logger.Info("Stopped execute event loop")
			return
		case task := <-exec.callC:
			exec.processCallEvent(task)
		}
	}
}
