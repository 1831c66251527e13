// Package leaderboard polls ranked standings on a fixed interval.
// It is purely read-driven; there is no write path.
package leaderboard

import (
	"context"
	"sync"
	"time"

	"codearena/internal/app/notify"
	"codearena/internal/domain/model"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Source is the slice of the gateway client the poller reads from.
type Source interface {
	GetLeaderboard(ctx context.Context) (*model.LeaderboardResponse, error)
}

type Poller struct {
	source   Source
	notifier notify.Notifier
	clock    clockwork.Clock
	interval time.Duration
	log      zerolog.Logger

	mu          sync.Mutex
	entries     []model.LeaderboardEntry
	lastUpdated time.Time
}

func NewPoller(source Source, notifier notify.Notifier, clock clockwork.Clock, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		notifier: notifier,
		clock:    clock,
		interval: interval,
		log:      log.With().Str("component", "leaderboard").Logger(),
	}
}

// Run fetches immediately, then on every interval tick until the
// context is cancelled. A failed poll raises a transient notification
// and the loop keeps going.
func (p *Poller) Run(ctx context.Context) {
	p.fetch(ctx)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			p.fetch(ctx)
		}
	}
}

// FetchOnce is the single-shot read used outside watch mode.
func (p *Poller) FetchOnce(ctx context.Context) error {
	resp, err := p.source.GetLeaderboard(ctx)
	if err != nil {
		return err
	}
	p.store(resp.Leaderboard)
	return nil
}

func (p *Poller) fetch(ctx context.Context) {
	resp, err := p.source.GetLeaderboard(ctx)
	if err != nil {
		p.log.Error().Err(err).Msg("leaderboard poll failed")
		p.notifier.Notify(notify.New(notify.LevelError, err.Error()))
		return
	}
	p.store(resp.Leaderboard)
}

func (p *Poller) store(entries []model.LeaderboardEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = entries
	p.lastUpdated = p.clock.Now()
}

func (p *Poller) Entries() []model.LeaderboardEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.LeaderboardEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *Poller) LastUpdated() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastUpdated
}

// SecondsSinceUpdate feeds the "updated Ns ago" display.
func (p *Poller) SecondsSinceUpdate() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastUpdated.IsZero() {
		return 0
	}
	return int(p.clock.Now().Sub(p.lastUpdated) / time.Second)
}
