package contact

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio-widgets/internal/clock"
)

type Kind int

const (
	KindSuccess Kind = iota
	KindFailure
)

func (k Kind) String() string {
	if k == KindSuccess {
		return "success"
	}
	return "error"
}

// Status is a transient message shown under the form.
type Status struct {
	Text string
	Kind Kind
}

func StatusFor(r Result) Status {
	if r.Success {
		return Status{Text: r.Message, Kind: KindSuccess}
	}
	return Status{Text: r.Message, Kind: KindFailure}
}

// StatusView is the status container on the page.
type StatusView interface {
	Show(Status)
	FadeOut()
	Hide()
}

// StatusDisplay shows one status at a time and hides it after HideAfter,
// with a FadeOut window before it disappears. Showing a new status cancels
// whatever hide is still pending for the previous one.
type StatusDisplay struct {
	View      StatusView
	Clock     clock.Clock
	HideAfter time.Duration
	FadeOut   time.Duration

	mu      sync.Mutex
	gen     uint64
	pending clock.Timer
}

func (d *StatusDisplay) Show(s Status) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.View.Show(s)

	gen := d.gen
	d.pending = d.clock().AfterFunc(d.HideAfter, func() { d.fade(gen) })
}

// Clear hides the current status immediately.
func (d *StatusDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.View.Hide()
}

func (d *StatusDisplay) fade(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	d.View.FadeOut()
	d.pending = d.clock().AfterFunc(d.FadeOut, func() { d.hide(gen) })
}

func (d *StatusDisplay) hide(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return
	}
	d.pending = nil
	d.View.Hide()
}

// cancelLocked invalidates timers already in flight as well as stopping the
// pending one, since Stop cannot recall a callback that has started.
func (d *StatusDisplay) cancelLocked() {
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *StatusDisplay) clock() clock.Clock {
	if d.Clock == nil {
		return clock.Real{}
	}
	return d.Clock
}
