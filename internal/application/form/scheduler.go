package form

import (
	"sort"
	"sync"
	"time"
)

// Scheduler programa callbacks diferidos. En producción es time.AfterFunc; los tests usan ManualScheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// RealScheduler usa los timers del runtime; los callbacks corren en su propia goroutine.
type RealScheduler struct{}

// AfterFunc implementa Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// ManualScheduler reloj virtual: los callbacks solo corren dentro de Advance, en orden de vencimiento.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []scheduled
}

type scheduled struct {
	at  time.Duration
	seq int
	f   func()
}

// NewManualScheduler crea el reloj en t=0.
func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

// AfterFunc implementa Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = append(s.pending, scheduled{at: s.now + d, seq: s.seq, f: f})
}

// Advance mueve el reloj d hacia adelante ejecutando los callbacks vencidos.
// Los callbacks pueden programar otros; los que venzan dentro de la ventana también se ejecutan.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].at == s.pending[j].at {
				return s.pending[i].seq < s.pending[j].seq
			}
			return s.pending[i].at < s.pending[j].at
		})
		if len(s.pending) == 0 || s.pending[0].at > target {
			break
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.now = next.at
		s.mu.Unlock()
		next.f()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Now tiempo virtual transcurrido.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}
