package tapclient

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/tap/handler/dto"
)

const (
	defaultFlushInterval = 5 * time.Second
	defaultFlushRate     = 2 // flushes per second, upper bound
)

// Batcher accumulates tap events client-side and flushes the count to the
// engine on a fixed interval. The local snapshot is an optimistic projection
// for display only; every engine response replaces it wholesale. A failed
// flush forfeits its batch: retrying a batch of unknown commit status risks
// double-crediting, losing a few seconds of progress is the cheaper outcome.
type Batcher struct {
	client   *resty.Client
	logger   *zap.Logger
	interval time.Duration
	limiter  ratelimit.Limiter

	mu       sync.Mutex
	pending  int
	snapshot dto.AccountSnapshot

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

type Option func(*Batcher)

func WithFlushInterval(interval time.Duration) Option {
	return func(b *Batcher) {
		b.interval = interval
	}
}

func NewBatcher(engineURL string, tokenName string, token string, logger *zap.Logger, opts ...Option) *Batcher {
	client := resty.New()
	client.SetBaseURL(engineURL)
	client.SetCookie(&http.Cookie{Name: tokenName, Value: token})

	batcher := &Batcher{
		client:   client,
		logger:   logger,
		interval: defaultFlushInterval,
		limiter:  ratelimit.New(defaultFlushRate),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(batcher)
	}

	return batcher
}

// Run starts the periodic flush loop.
func (b *Batcher) Run() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				b.Flush()
			case <-b.done:
				b.Flush()
				return
			}
		}
	}()
}

// Tap records one local tap event and bumps the optimistic projection.
func (b *Batcher) Tap() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending++
	b.snapshot.Coins++
	b.snapshot.SessionTaps++
}

// Snapshot returns the currently displayed view of the account.
func (b *Batcher) Snapshot() dto.AccountSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot
}

// Flush sends the accumulated count to the engine and reconciles the local
// view to the engine's authoritative response. Called by the loop; exposed so
// callers can force a flush.
func (b *Batcher) Flush() {
	b.mu.Lock()
	count := b.pending
	b.pending = 0
	b.mu.Unlock()

	if count == 0 {
		return
	}

	b.limiter.Take()

	var snapshot dto.AccountSnapshot
	response, err := b.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(dto.TapRequest{Count: count}).
		SetResult(&snapshot).
		Post("/api/user/taps")
	if err != nil {
		// batch forfeited, commit status unknown
		b.logger.Warn("tap flush failed, batch forfeited", zap.Int("count", count), zap.Error(err))
		return
	}

	if response.StatusCode() != http.StatusOK {
		b.logger.Info("tap flush rejected, resyncing",
			zap.Int("count", count), zap.Int("status", response.StatusCode()))
		b.resync()
		return
	}

	b.reconcile(snapshot)
}

// Close flushes whatever is pending and stops the loop.
func (b *Batcher) Close() {
	b.stopOnce.Do(func() {
		close(b.done)
	})
	b.wg.Wait()
}

func (b *Batcher) reconcile(snapshot dto.AccountSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = snapshot
	// taps recorded since the flush stay visible on top of the server view
	b.snapshot.Coins += int64(b.pending)
	b.snapshot.SessionTaps += b.pending
}

func (b *Batcher) resync() {
	var snapshot dto.AccountSnapshot
	response, err := b.client.R().
		SetResult(&snapshot).
		Get("/api/user/balance")
	if err != nil || response.StatusCode() != http.StatusOK {
		b.logger.Warn("resync failed", zap.Error(err))
		return
	}

	b.reconcile(snapshot)
}
