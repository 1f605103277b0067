package contact

import (
	"context"
	"sync"

	"github.com/Zachkp/portfolio-widgets/internal/emailjs"
)

type sendCall struct {
	ServiceID  string
	TemplateID string
	Params     emailjs.TemplateParams
}

type stubSender struct {
	mu     sync.Mutex
	key    string
	calls  []sendCall
	err    error
	errFor map[string]error
	block  chan struct{}
}

func (s *stubSender) Init(publicKey string) { s.key = publicKey }

func (s *stubSender) Send(ctx context.Context, serviceID, templateID string, params emailjs.TemplateParams) (emailjs.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, sendCall{serviceID, templateID, params})
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if err, ok := s.errFor[templateID]; ok {
		return emailjs.Response{}, err
	}
	if s.err != nil {
		return emailjs.Response{}, s.err
	}
	return emailjs.Response{Status: 200, Text: "OK"}, nil
}

func (s *stubSender) Calls() []sendCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sendCall(nil), s.calls...)
}

type viewEvent struct {
	Op     string
	Status Status
}

type fakeView struct {
	mu     sync.Mutex
	events []viewEvent
}

func (v *fakeView) Show(s Status) { v.record(viewEvent{Op: "show", Status: s}) }
func (v *fakeView) FadeOut()      { v.record(viewEvent{Op: "fade"}) }
func (v *fakeView) Hide()         { v.record(viewEvent{Op: "hide"}) }

func (v *fakeView) record(e viewEvent) {
	v.mu.Lock()
	v.events = append(v.events, e)
	v.mu.Unlock()
}

func (v *fakeView) Ops() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	ops := make([]string, 0, len(v.events))
	for _, e := range v.events {
		ops = append(ops, e.Op)
	}
	return ops
}

func (v *fakeView) Last() viewEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.events[len(v.events)-1]
}

type fakeForm struct {
	values Submission
	resets int
}

func (f *fakeForm) Values() Submission { return f.values }
func (f *fakeForm) Reset()             { f.resets++; f.values = Submission{} }

type fakeButton struct {
	mu       sync.Mutex
	label    string
	disabled bool
	history  []string
}

func (b *fakeButton) Disable(loading string) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	prev := b.label
	b.disabled = true
	b.label = loading
	b.history = append(b.history, "disable")
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.disabled = false
		b.label = prev
		b.history = append(b.history, "restore")
	}
}
