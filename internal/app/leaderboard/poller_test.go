package leaderboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"codearena/internal/app/notify"
	"codearena/internal/client"
	"codearena/internal/domain/model"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu      sync.Mutex
	calls   int
	entries []model.LeaderboardEntry
	err     error
	fetched chan struct{}
}

func (f *fakeSource) GetLeaderboard(ctx context.Context) (*model.LeaderboardResponse, error) {
	f.mu.Lock()
	f.calls++
	entries, err := f.entries, f.err
	f.mu.Unlock()
	if f.fetched != nil {
		f.fetched <- struct{}{}
	}
	if err != nil {
		return nil, err
	}
	return &model.LeaderboardResponse{Leaderboard: entries}, nil
}

func (f *fakeSource) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestPollerFetchesImmediatelyAndOnInterval(t *testing.T) {
	src := &fakeSource{
		entries: []model.LeaderboardEntry{{TeamName: "Off By One", EasyScore: 100}},
		fetched: make(chan struct{}, 8),
	}
	clock := clockwork.NewFakeClock()
	p := NewPoller(src, notify.NewRecorder(), clock, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	<-src.fetched // immediate fetch on start
	require.Equal(t, 1, src.callCount())
	require.Len(t, p.Entries(), 1)

	clock.BlockUntil(1)
	clock.Advance(10 * time.Second)
	<-src.fetched
	require.Equal(t, 2, src.callCount())

	clock.Advance(10 * time.Second)
	<-src.fetched
	require.Equal(t, 3, src.callCount())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}

func TestPollerFailureNotifiesAndKeepsPolling(t *testing.T) {
	src := &fakeSource{fetched: make(chan struct{}, 8)}
	src.setErr(&client.APIError{Message: "backend unavailable", Status: 503})

	rec := notify.NewRecorder()
	clock := clockwork.NewFakeClock()
	p := NewPoller(src, rec, clock, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	<-src.fetched
	clock.BlockUntil(1)

	last, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, notify.LevelError, last.Level)
	require.Equal(t, "backend unavailable", last.Message)

	// Recovery on a later tick replaces the entries.
	src.setErr(nil)
	src.mu.Lock()
	src.entries = []model.LeaderboardEntry{{TeamName: "Heap Hopes"}}
	src.mu.Unlock()

	clock.Advance(10 * time.Second)
	<-src.fetched
	require.Eventually(t, func() bool {
		return len(p.Entries()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSecondsSinceUpdate(t *testing.T) {
	src := &fakeSource{entries: []model.LeaderboardEntry{}}
	clock := clockwork.NewFakeClock()
	p := NewPoller(src, notify.NewRecorder(), clock, 10*time.Second)

	require.Zero(t, p.SecondsSinceUpdate())

	require.NoError(t, p.FetchOnce(context.Background()))
	require.Zero(t, p.SecondsSinceUpdate())

	clock.Advance(7 * time.Second)
	require.Equal(t, 7, p.SecondsSinceUpdate())
}

func TestFetchOncePropagatesError(t *testing.T) {
	src := &fakeSource{}
	src.setErr(&client.APIError{Message: "nope", Status: 500})
	p := NewPoller(src, notify.NewRecorder(), clockwork.NewFakeClock(), 10*time.Second)

	err := p.FetchOnce(context.Background())
	require.Error(t, err)
}
