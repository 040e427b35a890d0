package app

import (
	"github.com/sirupsen/logrus"

	"github.com/axiomesh/token-ledger/pkg/events"
	"github.com/axiomesh/token-ledger/pkg/types"
)

func (tl *TokenLedger) start() {
	go tl.listenCallExecuted()
}

// listenCallExecuted mirrors executed calls and their event logs into the app
// log, the operational trace of ledger activity.
func (tl *TokenLedger) listenCallExecuted() {
	callCh := make(chan events.CallExecutedEvent, 64)
	callSub := tl.Executor.SubscribeCallEvent(callCh)
	defer callSub.Unsubscribe()

	logsCh := make(chan []*types.Log, 64)
	logsSub := tl.Executor.SubscribeLogsEvent(logsCh)
	defer logsSub.Unsubscribe()

	for {
		select {
		case <-tl.Ctx.Done():
			return
		case ev := <-callCh:
			tl.logger.WithFields(logrus.Fields{
				"seq":    ev.Receipt.Seq,
				"method": ev.Receipt.Method,
				"status": ev.Receipt.Status,
			}).Info("Reported call")
		case logs := <-logsCh:
			for _, l := range logs {
				tl.logger.WithFields(logrus.Fields{
					"seq":   l.Seq,
					"index": l.Index,
					"topic": l.Topics[0],
				}).Debug("Reported event")
			}
		}
	}
}
