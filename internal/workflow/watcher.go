package workflow

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/footballhub/cli/internal/model"
)

// Watcher polls the profile on an interval and reports notifications it
// has not seen before. It carries no durable state; a restart re-reports
// whatever is currently pending.
type Watcher struct {
	profile  ProfileAPI
	interval time.Duration
	onNew    func(model.Notification)
	log      zerolog.Logger

	mu   sync.Mutex // guards seen; a slow poll can overlap the next tick
	seen map[string]struct{}
}

// NewWatcher builds a watcher; onNew runs on the scheduler goroutine and
// calls are serialized.
func NewWatcher(profile ProfileAPI, interval time.Duration, onNew func(model.Notification), logger zerolog.Logger) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{
		profile:  profile,
		interval: interval,
		onNew:    onNew,
		log:      logger.With().Str("module", "workflow").Str("component", "watcher").Logger(),
		seen:     make(map[string]struct{}),
	}
}

// Run polls until the context is canceled. The first poll runs
// immediately and reports everything currently pending; a poll that
// outlasts the interval skips the overlapping tick instead of stacking.
func (w *Watcher) Run(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	if _, err := sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() { w.poll(ctx) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		return err
	}
	sched.Start()

	<-ctx.Done()
	return sched.Shutdown()
}

// poll fetches the profile once; a failed poll is logged and retried on
// the next tick, nothing more.
func (w *Watcher) poll(ctx context.Context) {
	p, err := w.profile.Profile(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("profile poll failed")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, n := range p.Notifications {
		if _, ok := w.seen[n.ID]; ok {
			continue
		}
		w.seen[n.ID] = struct{}{}
		if w.onNew != nil {
			w.onNew(n)
		}
	}
}
