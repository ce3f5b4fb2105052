package contentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vedag812/netfolio-api/internal/domain/content"
	"github.com/vedag812/netfolio-api/pkg/logger"
)

// PollerState tracks the freshness lifecycle: Uninitialized until Start,
// Loading until the first successful fetch, Ready from then on. There is
// no error state; a failed poll is logged and retried on the next tick.
type PollerState int

const (
	StateUninitialized PollerState = iota
	StateLoading
	StateReady
)

// Poller keeps an open viewer session reasonably fresh without a push
// channel: it re-fetches the media configuration on a fixed interval with
// cache-bypassing headers and swaps its held copy only when the serialized
// document actually changed. Propagation latency of an admin edit is
// bounded by the interval, never instantaneous.
type Poller struct {
	baseURL  string
	interval time.Duration
	http     *http.Client
	logger   logger.Logger

	mu     sync.RWMutex
	state  PollerState
	config content.MediaConfig
	raw    []byte
	subs   []chan content.MediaConfig
}

func NewPoller(baseURL string, interval time.Duration, log logger.Logger) *Poller {
	return &Poller{
		baseURL:  baseURL,
		interval: interval,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   log,
		state:    StateUninitialized,
	}
}

// Start fetches once, then polls until ctx is cancelled. It returns after
// the initial fetch attempt; polling continues on its own goroutine so the
// caller's loop is never blocked.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	p.state = StateLoading
	p.mu.Unlock()

	if err := p.poll(ctx); err != nil {
		p.logger.Warn("initial media config fetch failed, will retry", zap.Error(err))
	}

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.poll(ctx); err != nil {
				p.logger.Warn("media config poll failed, retrying next tick", zap.Error(err))
			}
		}
	}
}

// State reports the current lifecycle phase.
func (p *Poller) State() PollerState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Config returns the held configuration; ok is false before the first
// successful fetch.
func (p *Poller) Config() (content.MediaConfig, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.config, p.state == StateReady
}

// Subscribe returns a channel receiving each changed configuration. The
// channel is buffered and a lagging subscriber drops updates rather than
// stalling the poll loop.
func (p *Poller) Subscribe() <-chan content.MediaConfig {
	ch := make(chan content.MediaConfig, 1)
	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()
	return ch
}

func (p *Poller) poll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api/media", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	req.Header.Set("Pragma", "no-cache")

	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("media fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var cfg content.MediaConfig
	if err := json.Unmarshal(body, &cfg); err != nil {
		return fmt.Errorf("cannot decode media config: %w", err)
	}

	p.apply(cfg, body)
	return nil
}

// apply swaps in the new configuration only when the serialized form
// differs, so dependent views re-render exactly when content changed.
func (p *Poller) apply(cfg content.MediaConfig, raw []byte) {
	p.mu.Lock()

	changed := p.state != StateReady || !bytes.Equal(p.raw, raw)
	p.config = cfg
	p.raw = raw
	p.state = StateReady

	var subs []chan content.MediaConfig
	if changed {
		subs = append(subs, p.subs...)
	}
	p.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- cfg:
		default:
		}
	}
}
