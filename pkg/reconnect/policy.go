package reconnect

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/latticekit/lattice/internal/logging"
)

// State identifies the policy's position in its lifecycle.
type State string

const (
	StateDisconnected State = "disconnected"
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"

	// StateGaveUp is terminal: the retry budget is spent. Only Reset leaves it.
	StateGaveUp State = "gave_up"
)

// NormalClosure is the closure code of an explicit, expected disconnect.
// Any other code is treated as abnormal and eligible for retry.
const NormalClosure = 1000

// ErrExhausted is surfaced to the owner when the retry budget is consumed.
var ErrExhausted = errors.New("reconnect attempts exhausted")

// retryTimer is the handle to a scheduled retry. *time.Timer satisfies it;
// tests substitute their own.
type retryTimer interface {
	Stop() bool
}

// Policy governs reconnection for a single connection.
// Safe for concurrent use; the retry timer fires on its own goroutine.
type Policy struct {
	cfg    Config
	logger *slog.Logger

	connect     func()
	onGiveUp    func(error)
	onScheduled func(attempt int, delay time.Duration)

	schedule func(time.Duration, func()) retryTimer

	mu      sync.Mutex
	state   State
	attempt int
	timer   retryTimer
}

// Option configures a Policy.
type Option func(*Policy)

// WithConnect sets the callback fired when a scheduled retry elapses. The
// owner performs the actual dial and reports back via OnOpen or OnError.
func WithConnect(fn func()) Option {
	return func(p *Policy) {
		p.connect = fn
	}
}

// WithOnGiveUp sets the callback fired once when the policy gives up, so the
// owner can alert the user or switch to degraded mode.
func WithOnGiveUp(fn func(error)) Option {
	return func(p *Policy) {
		p.onGiveUp = fn
	}
}

// WithOnScheduled sets an observer for each scheduled retry (attempt number
// and delay). Used for metrics.
func WithOnScheduled(fn func(attempt int, delay time.Duration)) Option {
	return func(p *Policy) {
		p.onScheduled = fn
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Policy) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a Policy in the Disconnected state.
func New(cfg Config, opts ...Option) (*Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Policy{
		cfg:    cfg,
		logger: logging.NewNop(),
		state:  StateDisconnected,
		schedule: func(d time.Duration, fn func()) retryTimer {
			return time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// State returns the current lifecycle state.
func (p *Policy) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Attempt returns the number of consecutive failed attempts.
func (p *Policy) Attempt() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempt
}

// Backoff returns the retry delay for the given attempt number:
// base_interval * 2^min(attempt, maxAttempts-1). The exponent cap bounds the
// maximum delay however large the budget is.
func (p *Policy) Backoff(attempt int) time.Duration {
	exp := attempt
	if cap := p.cfg.MaxAttempts - 1; exp > cap {
		exp = cap
	}
	return p.cfg.BaseInterval() << exp
}

// OnOpen reports a successful connection. The attempt counter resets, so the
// next drop starts the backoff sequence from the base interval again.
func (p *Policy) OnOpen() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.state = StateConnected
	p.attempt = 0
	p.logger.Debug("connection established")
}

// OnClose reports that the connection closed. A normal closure parks the
// policy in Disconnected; any other code schedules a retry (or gives up).
func (p *Policy) OnClose(code int, reason string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateGaveUp {
		return
	}

	if code == NormalClosure {
		p.cancelLocked()
		p.state = StateDisconnected
		p.logger.Debug("connection closed normally", "reason", reason)
		return
	}

	p.logger.Info("connection closed abnormally", "code", code, "reason", reason)
	p.scheduleRetryLocked()
}

// OnError reports a failed connection attempt. It consumes one attempt from
// the budget, exactly as an abnormal closure does.
func (p *Policy) OnError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateGaveUp {
		return
	}

	p.logger.Info("connection error", "err", err)
	p.scheduleRetryLocked()
}

// ForceClose cancels any pending retry and parks the policy in
// Disconnected without consuming attempts. Exposed as a test hook and for
// explicit owner-side disconnects.
func (p *Policy) ForceClose() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.state = StateDisconnected
}

// Reset returns a gave-up policy to Disconnected with a fresh budget.
func (p *Policy) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelLocked()
	p.state = StateDisconnected
	p.attempt = 0
}

func (p *Policy) scheduleRetryLocked() {
	p.cancelLocked()

	if p.attempt >= p.cfg.MaxAttempts {
		p.state = StateGaveUp
		p.logger.Warn("giving up on reconnection", "attempts", p.attempt)
		if p.onGiveUp != nil {
			// Release the lock around the callback so the owner can query
			// the policy from inside it.
			p.mu.Unlock()
			p.onGiveUp(ErrExhausted)
			p.mu.Lock()
		}
		return
	}

	delay := p.Backoff(p.attempt)
	attempt := p.attempt + 1
	p.attempt = attempt
	p.state = StateConnecting

	p.logger.Debug("scheduling reconnect", "attempt", attempt, "delay", delay)
	if p.onScheduled != nil {
		p.onScheduled(attempt, delay)
	}

	p.timer = p.schedule(delay, func() { p.fire() })
}

// fire runs when a scheduled retry elapses.
func (p *Policy) fire() {
	p.mu.Lock()
	if p.state != StateConnecting {
		// Cancelled or state moved on; stale timers do nothing.
		p.mu.Unlock()
		return
	}
	p.timer = nil
	connect := p.connect
	p.mu.Unlock()

	if connect != nil {
		connect()
	}
}

func (p *Policy) cancelLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
