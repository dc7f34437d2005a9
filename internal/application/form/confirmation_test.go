package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventar/internal/application/form"
)

func TestConfirmation_BorrarProductoLineaDeTiempo(t *testing.T) {
	sched := form.NewManualScheduler()
	btn := form.NewConfirmation(form.DeleteCountdown, sched)

	v := btn.View()
	assert.Equal(t, "Șterge produs", v.Label)
	assert.False(t, v.Disabled)

	assert.Equal(t, form.PressStarted, btn.Press())
	v = btn.View()
	assert.Equal(t, "Ești sigur/ă? (2)", v.Label)
	assert.True(t, v.Disabled)

	sched.Advance(500 * time.Millisecond)
	assert.Equal(t, "Ești sigur/ă? (1)", btn.View().Label)
	assert.Equal(t, form.PressIgnored, btn.Press(), "deshabilitado mientras cuenta")

	sched.Advance(500 * time.Millisecond)
	v = btn.View()
	assert.Equal(t, "armed", v.Phase)
	assert.Equal(t, "Ești sigur/ă?", v.Label)
	assert.False(t, v.Disabled)

	sched.Advance(2500 * time.Millisecond)
	v = btn.View()
	assert.Equal(t, "idle", v.Phase)
	assert.Equal(t, "Șterge produs", v.Label)
}

func TestConfirmation_BorrarTodosArmaA3750(t *testing.T) {
	sched := form.NewManualScheduler()
	btn := form.NewConfirmation(form.ClearAllCountdown, sched)

	btn.Press()
	assert.Equal(t, "Ești sigur/ă? (5)", btn.View().Label)

	sched.Advance(3749 * time.Millisecond)
	assert.Equal(t, "Ești sigur/ă? (1)", btn.View().Label)

	sched.Advance(time.Millisecond)
	assert.Equal(t, "armed", btn.View().Phase)
	assert.Equal(t, 3750*time.Millisecond, form.ClearAllCountdown.ArmedAt())

	sched.Advance(6500*time.Millisecond - 3750*time.Millisecond)
	assert.Equal(t, "Șterge toate produsele", btn.View().Label)
}

func TestConfirmation_ConfirmarVuelveAlInicio(t *testing.T) {
	sched := form.NewManualScheduler()
	btn := form.NewConfirmation(form.DeleteCountdown, sched)

	btn.Press()
	sched.Advance(time.Second)
	assert.Equal(t, form.PressConfirmed, btn.Press())
	assert.Equal(t, "idle", btn.View().Phase)

	// una nueva secuencia no se ve afectada por el reset pendiente de la anterior
	sched.Advance(time.Second)
	assert.Equal(t, form.PressStarted, btn.Press())
	sched.Advance(1600 * time.Millisecond)
	assert.Equal(t, "armed", btn.View().Phase, "el reset viejo (t=3,5 s) tiene token caducado")
}

func TestConfirmation_ResetInvalidaCallbacks(t *testing.T) {
	sched := form.NewManualScheduler()
	btn := form.NewConfirmation(form.DeleteCountdown, sched)

	btn.Press()
	btn.Reset()
	sched.Advance(5 * time.Second)
	v := btn.View()
	assert.Equal(t, "idle", v.Phase)
	assert.Equal(t, 0, v.Remaining)
}
