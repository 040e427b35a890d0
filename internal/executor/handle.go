package executor

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/pkg/events"
	"github.com/axiomesh/token-ledger/pkg/types"
)

func (exec *CallExecutor) processCallEvent(task *callTask) {
	if task.query {
		task.respC <- exec.processQuery(task.call)
		return
	}

	current := time.Now()
	seq := exec.currentSeq + 1
	receipt := exec.applyCall(seq, task.call)

	exec.ledger.PersistReceipt(receipt)
	exec.currentSeq = seq

	exec.logger.WithFields(logrus.Fields{
		"seq":    receipt.Seq,
		"method": receipt.Method,
		"status": receipt.Status,
		"count":  len(receipt.Logs),
		"elapse": time.Since(current),
	}).Info("Executed call")

	callCounter.Inc()
	if !receipt.IsSuccess() {
		failedCallCounter.Inc()
	}
	executeCallDuration.Observe(float64(time.Since(current)) / float64(time.Second))

	exec.postCallEvent(receipt)
	exec.postLogsEvent(receipt)

	task.respC <- &callResult{receipt: receipt}
}

// applyCall runs the calldata through the native VM. On success the dirty
// state is committed together with the logs the call recorded. On failure the
// dirty state is dropped, so a failed call leaves no trace beyond its receipt.
func (exec *CallExecutor) applyCall(seq uint64, call *CallRequest) *types.Receipt {
	receipt := &types.Receipt{
		Seq:  seq,
		From: call.From,
	}

	exec.ledger.StateLedger.SetTxContext(seq)
	exec.nvm.Reset(seq, exec.ledger.StateLedger, call.From, &call.To)
	receipt.Method = exec.nvm.MethodName(call.To, call.Data)

	ret, err := exec.nvm.Run(call.Data)
	receipt.Ret = ret
	if err != nil {
		exec.ledger.StateLedger.Clear()
		receipt.Status = types.ReceiptFAILED
		receipt.ErrMsg = err.Error()
		return receipt
	}

	exec.ledger.StateLedger.Finalise()
	receipt.Logs = exec.ledger.StateLedger.GetLogs()
	if err := exec.ledger.StateLedger.Commit(); err != nil {
		panic(fmt.Errorf("commit stateLedger failed: %w", err))
	}
	receipt.Status = types.ReceiptSUCCESS
	return receipt
}

// processQuery runs a read-only call against the committed state and drops
// whatever the call touched. No sequence is assigned and nothing is persisted.
func (exec *CallExecutor) processQuery(call *CallRequest) *callResult {
	current := time.Now()

	view := exec.nvm.View()
	view.Reset(exec.currentSeq, exec.ledger.StateLedger, call.From, &call.To)
	ret, err := view.Run(call.Data)
	exec.ledger.StateLedger.Clear()

	queryCounter.Inc()
	queryCallDuration.Observe(float64(time.Since(current)) / float64(time.Second))

	return &callResult{ret: ret, err: err}
}

func (exec *CallExecutor) postCallEvent(receipt *types.Receipt) {
	exec.callFeed.Send(events.CallExecutedEvent{Receipt: receipt})
}

func (exec *CallExecutor) postLogsEvent(receipt *types.Receipt) {
	if len(receipt.Logs) == 0 {
		return
	}
	exec.logsFeed.Send(receipt.Logs)
}
