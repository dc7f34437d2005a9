package form

import (
	"fmt"
	"sync"
	"time"
)

// Countdown parámetros de la confirmación en dos pasos de un botón destructivo.
// Al pulsar, el botón queda deshabilitado Steps ticks de Step cada uno, luego queda armado
// y a los ResetAfter (contados desde la pulsación) vuelve solo al estado inicial.
type Countdown struct {
	Steps      int
	Step       time.Duration
	ResetAfter time.Duration
	IdleLabel  string
}

// ArmedAt momento (desde la pulsación) en que el botón queda armado.
func (c Countdown) ArmedAt() time.Duration { return time.Duration(c.Steps) * c.Step }

var (
	// DeleteCountdown borrar un producto: armado a 1 s, vuelve al inicio a 3,5 s.
	DeleteCountdown = Countdown{Steps: 2, Step: 500 * time.Millisecond, ResetAfter: 3500 * time.Millisecond, IdleLabel: "Șterge produs"}
	// ClearAllCountdown borrar todos: armado a 3,75 s, vuelve al inicio a 6,5 s.
	ClearAllCountdown = Countdown{Steps: 5, Step: 750 * time.Millisecond, ResetAfter: 6500 * time.Millisecond, IdleLabel: "Șterge toate produsele"}
)

const confirmLabel = "Ești sigur/ă?"

// Phase fase del botón.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseCounting
	PhaseArmed
)

func (p Phase) String() string {
	switch p {
	case PhaseCounting:
		return "counting"
	case PhaseArmed:
		return "armed"
	default:
		return "idle"
	}
}

// PressResult efecto de una pulsación.
type PressResult int

const (
	// PressStarted comenzó la cuenta atrás.
	PressStarted PressResult = iota + 1
	// PressIgnored el botón estaba deshabilitado (contando).
	PressIgnored
	// PressConfirmed el botón estaba armado: el llamador ejecuta la acción destructiva.
	PressConfirmed
)

func (r PressResult) String() string {
	switch r {
	case PressStarted:
		return "started"
	case PressIgnored:
		return "ignored"
	case PressConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// ConfirmView estado visible del botón.
type ConfirmView struct {
	Phase     string `json:"phase"`
	Label     string `json:"label"`
	Disabled  bool   `json:"disabled"`
	Remaining int    `json:"remaining"`
}

// Confirmation máquina de estados de un botón con confirmación por cuenta atrás.
// Cada secuencia lleva un token; un callback con token viejo no cambia nada,
// así la última secuencia programada es la única que manda.
type Confirmation struct {
	mu        sync.Mutex
	cfg       Countdown
	sched     Scheduler
	token     uint64
	phase     Phase
	remaining int
}

// NewConfirmation crea el botón en estado inicial.
func NewConfirmation(cfg Countdown, sched Scheduler) *Confirmation {
	return &Confirmation{cfg: cfg, sched: sched}
}

// Press pulsa el botón.
func (c *Confirmation) Press() PressResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhaseCounting:
		return PressIgnored
	case PhaseArmed:
		c.resetLocked()
		return PressConfirmed
	}

	c.token++
	tok := c.token
	c.phase = PhaseCounting
	c.remaining = c.cfg.Steps

	for i := c.cfg.Steps - 1; i >= 0; i-- {
		n := i
		c.sched.AfterFunc(time.Duration(c.cfg.Steps-n)*c.cfg.Step, func() { c.tick(tok, n) })
	}
	c.sched.AfterFunc(c.cfg.ResetAfter, func() { c.expire(tok) })
	return PressStarted
}

// Reset vuelve al estado inicial e invalida los callbacks pendientes.
func (c *Confirmation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// View estado visible actual.
func (c *Confirmation) View() ConfirmView {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := ConfirmView{Phase: c.phase.String(), Remaining: c.remaining}
	switch c.phase {
	case PhaseCounting:
		v.Label = fmt.Sprintf("%s (%d)", confirmLabel, c.remaining)
		v.Disabled = true
	case PhaseArmed:
		v.Label = confirmLabel
	default:
		v.Label = c.cfg.IdleLabel
	}
	return v
}

func (c *Confirmation) tick(tok uint64, remaining int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok != c.token || c.phase != PhaseCounting {
		return
	}
	c.remaining = remaining
	if remaining == 0 {
		c.phase = PhaseArmed
	}
}

func (c *Confirmation) expire(tok uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok != c.token {
		return
	}
	c.resetLocked()
}

func (c *Confirmation) resetLocked() {
	c.token++
	c.phase = PhaseIdle
	c.remaining = 0
}
