// Package scheduler provides the iteration-counting timeouts the
// protocol engines wait on: per-engine budgets (TIMEOUT, POLL_TIMEOUT,
// TWH_TIMEOUT) count polling iterations, and exceeding one aborts the
// current frame and re-arms. A full event heap isn't needed because
// every engine already polls in lock-step with the HAL edge/byte
// primitives — what's needed is a small, resettable deadline counter
// per wait point.
package scheduler

// PollTimeout counts polling iterations against a fixed budget. Tick
// reports whether the budget has been exceeded; callers abort the
// current response and Reset before re-arming the receiver, matching
// the Timeout recovery ("abort current response, re-arm
// receiver").
type PollTimeout struct {
	budget int
	count  int
}

// NewPollTimeout returns a timeout with the given iteration budget.
func NewPollTimeout(budget int) *PollTimeout {
	return &PollTimeout{budget: budget}
}

// Tick advances the counter by one polling iteration and reports
// whether the budget has been exceeded.
func (p *PollTimeout) Tick() bool {
	p.count++
	return p.count > p.budget
}

// Reset re-arms the timeout for the next wait point.
func (p *PollTimeout) Reset() {
	p.count = 0
}

// Count returns the number of iterations observed since the last
// Reset, for tests and diagnostics.
func (p *PollTimeout) Count() int { return p.count }
