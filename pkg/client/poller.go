package client

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is the delay between status requests.
const DefaultPollInterval = 2 * time.Second

// PollState is the lifecycle state of a Poller.
type PollState string

const (
	// PollIdle means the poller has not started or was stopped before finishing.
	PollIdle PollState = "idle"
	// PollRunning means the poller is issuing status requests.
	PollRunning PollState = "polling"
	// PollDone means a terminal conversion status was observed.
	PollDone PollState = "done"
)

// Poller waits for a conversion job to reach a terminal status. Once a
// terminal status is observed no further requests are made.
type Poller struct {
	client   *Client
	id       string
	interval time.Duration

	mu    sync.Mutex
	state PollState
}

// PollOption configures a Poller.
type PollOption func(*Poller)

// WithPollInterval overrides the delay between status requests.
func WithPollInterval(d time.Duration) PollOption {
	return func(p *Poller) {
		p.interval = d
	}
}

// NewPoller creates a poller for the given conversion job.
func (c *Client) NewPoller(conversionID string, opts ...PollOption) *Poller {
	p := &Poller{
		client:   c,
		id:       conversionID,
		interval: DefaultPollInterval,
		state:    PollIdle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current poller state.
func (p *Poller) State() PollState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) setState(s PollState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Wait polls the conversion on the configured interval until it reaches a
// terminal status and returns the final conversion. Cancelling the context
// stops the loop and returns the poller to idle.
func (p *Poller) Wait(ctx context.Context) (*Conversion, error) {
	p.setState(PollRunning)

	for {
		select {
		case <-ctx.Done():
			p.setState(PollIdle)
			return nil, ctx.Err()
		case <-time.After(p.interval):
		}

		conv, err := p.client.ConversionStatus(ctx, p.id)
		if err != nil {
			p.setState(PollIdle)
			return nil, err
		}

		if conv.Done() {
			p.setState(PollDone)
			return conv, nil
		}
	}
}
