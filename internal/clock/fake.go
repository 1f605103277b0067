package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced clock. AfterFunc callbacks run synchronously
// inside Advance. Tickers are buffered so a single-goroutine test can queue
// ticks ahead of the consumer.
type Fake struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	timers  []*fakeTimer
	tickers []*fakeTicker
}

func NewFake() *Fake {
	return &Fake{}
}

type fakeTimer struct {
	clk     *Fake
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clk.mu.Lock()
	defer t.clk.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeTicker struct {
	clk     *Fake
	every   time.Duration
	next    time.Duration
	ch      chan time.Time
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.clk.mu.Lock()
	t.stopped = true
	t.clk.mu.Unlock()
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t := &fakeTimer{clk: f, at: f.now + d, seq: f.seq, f: fn}
	f.timers = append(f.timers, t)
	return t
}

// NewTicker returns a ticker whose channel can hold up to 1024 pending ticks.
func (f *Fake) NewTicker(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{clk: f, every: d, next: f.now + d, ch: make(chan time.Time, 1024)}
	f.tickers = append(f.tickers, t)
	return t
}

// Elapsed reports how far the clock has been advanced.
func (f *Fake) Elapsed() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Pending reports the number of timers that have neither fired nor stopped.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due timers in deadline order
// and queueing ticks on live tickers. Timers scheduled by a callback fire in
// the same call if they fall due within d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		due := f.nextDue(target)
		if due == nil {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.now = due.at
		due.fired = true
		fn := due.f
		f.mu.Unlock()
		fn()
	}
}

// nextDue must be called with mu held. It also flushes ticks up to the
// returned timer's deadline (or target when none is due).
func (f *Fake) nextDue(target time.Duration) *fakeTimer {
	var live []*fakeTimer
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	f.timers = live
	sort.Slice(live, func(i, j int) bool {
		if live[i].at == live[j].at {
			return live[i].seq < live[j].seq
		}
		return live[i].at < live[j].at
	})

	limit := target
	var due *fakeTimer
	if len(live) > 0 && live[0].at <= target {
		due = live[0]
		limit = due.at
	}

	for _, tk := range f.tickers {
		for !tk.stopped && tk.next <= limit {
			select {
			case tk.ch <- time.Unix(0, 0).Add(tk.next):
			default:
			}
			tk.next += tk.every
		}
	}
	return due
}
