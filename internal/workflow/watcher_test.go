package workflow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/footballhub/cli/internal/model"
)

type fakeProfile struct {
	mu     sync.Mutex
	player model.Player
	err    error
}

var _ ProfileAPI = (*fakeProfile)(nil)

func (f *fakeProfile) Profile(context.Context) (model.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.player, f.err
}

func (f *fakeProfile) set(player model.Player, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.player, f.err = player, err
}

func TestWatcher_PollReportsEachNotificationOnce(t *testing.T) {
	profile := &fakeProfile{player: model.Player{Notifications: []model.Notification{
		{ID: "n1", Title: model.CategoryTeamJoinRequest},
		{ID: "n2", Title: model.CategoryMatchInvitation},
	}}}
	var got []string
	w := NewWatcher(profile, time.Minute, func(n model.Notification) {
		got = append(got, n.ID)
	}, zerolog.Nop())

	w.poll(context.Background())
	assert.Equal(t, []string{"n1", "n2"}, got)

	// A re-poll of the same pending list reports nothing new.
	w.poll(context.Background())
	assert.Equal(t, []string{"n1", "n2"}, got)

	profile.set(model.Player{Notifications: []model.Notification{
		{ID: "n1", Title: model.CategoryTeamJoinRequest},
		{ID: "n3", Title: model.CategoryOrderRequest},
	}}, nil)
	w.poll(context.Background())
	assert.Equal(t, []string{"n1", "n2", "n3"}, got)
}

func TestWatcher_PollToleratesFetchFailure(t *testing.T) {
	profile := &fakeProfile{err: context.DeadlineExceeded}
	var got []string
	w := NewWatcher(profile, time.Minute, func(n model.Notification) {
		got = append(got, n.ID)
	}, zerolog.Nop())

	w.poll(context.Background())
	assert.Empty(t, got)

	// The next tick after recovery reports the backlog.
	profile.set(model.Player{Notifications: []model.Notification{{ID: "n1"}}}, nil)
	w.poll(context.Background())
	assert.Equal(t, []string{"n1"}, got)
}

func TestWatcher_RunReportsImmediatelyAndStopsOnCancel(t *testing.T) {
	profile := &fakeProfile{player: model.Player{Notifications: []model.Notification{{ID: "n1"}}}}
	seen := make(chan string, 1)
	w := NewWatcher(profile, 10*time.Millisecond, func(n model.Notification) {
		select {
		case seen <- n.ID:
		default:
		}
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case id := <-seen:
		assert.Equal(t, "n1", id)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reported the pending notification")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatcher_DefaultsInterval(t *testing.T) {
	w := NewWatcher(&fakeProfile{}, 0, nil, zerolog.Nop())
	assert.Equal(t, 30*time.Second, w.interval)
}
