package flow

import (
	"sync"
	"time"
)

// Store keeps flows in memory and drops those untouched for longer than ttl.
// It also remembers the date a user last picked for each venue, so a new
// flow for the same venue starts with it.
type Store struct {
	mu    sync.RWMutex
	flows map[string]*Flow
	dates map[dateKey]rememberedDate

	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type dateKey struct {
	userID  string
	venueID string
}

type rememberedDate struct {
	date string
	at   time.Time
}

// dateTTL bounds how long a remembered date survives without use.
const dateTTL = 30 * 24 * time.Hour

func NewStore(ttl time.Duration) *Store {
	s := newStore(ttl, time.Now)
	go s.cleanupLoop(min(ttl, time.Minute))
	return s
}

func newStore(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		flows: make(map[string]*Flow),
		dates: make(map[dateKey]rememberedDate),
		ttl:   ttl,
		now:   now,
		stop:  make(chan struct{}),
	}
}

func (s *Store) Put(f *Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[f.id] = f
}

// Get returns a live flow. Expired flows are treated as missing.
func (s *Store) Get(id string) (*Flow, bool) {
	s.mu.RLock()
	f, ok := s.flows[id]
	s.mu.RUnlock()
	if !ok || s.expired(f, s.now()) {
		return nil, false
	}
	return f, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}

func (s *Store) RememberDate(userID, venueID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dates[dateKey{userID, venueID}] = rememberedDate{date: date, at: s.now()}
}

func (s *Store) RecallDate(userID, venueID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dates[dateKey{userID, venueID}]
	if !ok || s.now().Sub(d.at) > dateTTL {
		return ""
	}
	return d.date
}

func (s *Store) expired(f *Flow, now time.Time) bool {
	return !f.busy() && now.Sub(f.lastTouched()) > s.ttl
}

func (s *Store) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stop:
			return
		}
	}
}

func (s *Store) cleanup() {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, f := range s.flows {
		if s.expired(f, now) {
			delete(s.flows, id)
		}
	}
	for k, d := range s.dates {
		if now.Sub(d.at) > dateTTL {
			delete(s.dates, k)
		}
	}
}

func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}
