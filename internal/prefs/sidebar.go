package prefs

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ums-console/internal/localstore"
	"ums-console/internal/metrics"

	"github.com/sirupsen/logrus"
)

// SidebarKey is the store key holding the JSON-encoded collapsed flag.
const SidebarKey = "sidebarCollapsed"

// DefaultPollInterval keeps writes visible to other contexts well
// inside the 150ms budget the views were designed around.
const DefaultPollInterval = 100 * time.Millisecond

// SidebarSync keeps the sidebar-collapsed preference consistent across
// every mounted console context. One instance per process owns a
// polling loop and a store-notification listener; both feed the same
// idempotent reconcile, so their race is safe. Change events from the
// store do not reliably reach the context that wrote, which is why the
// poll exists at all.
type SidebarSync struct {
	store    localstore.Store
	interval time.Duration

	mu      sync.Mutex
	applied bool
	subs    []chan bool

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSidebarSync(store localstore.Store, interval time.Duration) *SidebarSync {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &SidebarSync{store: store, interval: interval}
}

// Read returns the current preference straight from the store.
// Missing or unparsable values read as false.
func (s *SidebarSync) Read(ctx context.Context) bool {
	raw, ok, err := s.store.Get(ctx, SidebarKey)
	if err != nil || !ok {
		return false
	}
	var collapsed bool
	if err := json.Unmarshal([]byte(raw), &collapsed); err != nil {
		return false
	}
	return collapsed
}

// Write persists the preference immediately and applies it locally:
// the store will not echo our own write back as a notification.
func (s *SidebarSync) Write(ctx context.Context, collapsed bool) error {
	raw, _ := json.Marshal(collapsed)
	if err := s.store.Set(ctx, SidebarKey, string(raw)); err != nil {
		return err
	}
	s.apply(collapsed)
	return nil
}

// Subscribe returns a channel that receives the preference whenever
// the applied value changes. Redundant applications are suppressed.
func (s *SidebarSync) Subscribe() <-chan bool {
	ch := make(chan bool, 4)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Start launches the reconciliation loop. Call Stop to shut it down.
func (s *SidebarSync) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.mu.Lock()
	s.applied = false
	s.mu.Unlock()
	s.reconcile(ctx)

	notifications, err := s.store.Notifications(ctx)
	if err != nil {
		logrus.Warnf("[Prefs] store notifications unavailable, polling only: %v", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.reconcile(ctx)
			case key, ok := <-notifications:
				if !ok {
					notifications = nil
					continue
				}
				if key == SidebarKey {
					s.reconcile(ctx)
				}
			}
		}
	}()
}

// Stop terminates the reconciliation loop and waits for it to exit.
func (s *SidebarSync) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

// reconcile compares the fresh store value with the last applied one
// and re-applies only on change. Safe to call from the poll tick and
// the notification path concurrently.
func (s *SidebarSync) reconcile(ctx context.Context) {
	fresh := s.Read(ctx)
	if s.apply(fresh) {
		metrics.PrefReconcileTotal.WithLabelValues("true").Inc()
	} else {
		metrics.PrefReconcileTotal.WithLabelValues("false").Inc()
	}
}

// apply records the value and fans it out; returns true if it changed.
func (s *SidebarSync) apply(collapsed bool) bool {
	s.mu.Lock()
	if s.applied == collapsed {
		s.mu.Unlock()
		return false
	}
	s.applied = collapsed
	subs := append([]chan bool(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- collapsed:
		default:
		}
	}
	return true
}
