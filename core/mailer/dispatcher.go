package mailer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher sends notices fire-and-forget with bounded retry. It decouples
// notification from the merge transaction boundary: a send failure is logged
// and dropped, never returned to the merge caller.
type Dispatcher struct {
	sender  Sender
	logger  *zap.Logger
	retries int
	backoff time.Duration

	wg sync.WaitGroup
}

// NewDispatcher creates a Dispatcher around the given sender. A nil sender
// yields a dispatcher that drops every notice (mail disabled).
func NewDispatcher(sender Sender, logger *zap.Logger, cfg Config) *Dispatcher {
	retries := cfg.Retries
	if retries <= 0 {
		retries = 1
	}
	return &Dispatcher{
		sender:  sender,
		logger:  logger,
		retries: retries,
		backoff: time.Duration(cfg.BackoffSeconds) * time.Second,
	}
}

// Dispatch queues the notice for asynchronous delivery and returns
// immediately. An empty destination address skips delivery silently.
func (d *Dispatcher) Dispatch(n Notice) {
	if d == nil || d.sender == nil || n.To == "" {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		var err error
		for attempt := 1; attempt <= d.retries; attempt++ {
			// Detached context: the originating request is already done.
			if err = d.sender.Send(context.Background(), n); err == nil {
				return
			}
			if attempt < d.retries {
				time.Sleep(d.backoff)
			}
		}
		d.logger.Warn("Notification delivery failed",
			zap.String("to", n.To),
			zap.String("suggestion_type", n.SuggestionType),
			zap.Int("attempts", d.retries),
			zap.Error(err))
	}()
}

// Wait blocks until all in-flight notices are delivered or exhausted.
// Used in tests and during graceful shutdown.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}
