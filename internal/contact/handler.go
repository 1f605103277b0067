package contact

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrSubmissionInFlight is returned when a submit arrives while another is
// still being delivered.
var ErrSubmissionInFlight = errors.New("contact: submission already in flight")

const LoadingLabel = "Sending..."

// Form is the contact form on the page.
type Form interface {
	Values() Submission
	Reset()
}

// SubmitControl is the form's submit button. Disable returns whatever is
// needed to restore it.
type SubmitControl interface {
	Disable(loadingLabel string) (restore func())
}

// Handler wires a Workflow to the page.
type Handler struct {
	Workflow *Workflow
	Form     Form
	Submit   SubmitControl
	Status   *StatusDisplay

	busy atomic.Bool
}

// Handle runs one submission end to end. The submit control is restored
// whatever the outcome.
func (h *Handler) Handle(ctx context.Context) (Result, error) {
	if !h.busy.CompareAndSwap(false, true) {
		return Result{}, ErrSubmissionInFlight
	}
	defer h.busy.Store(false)

	restore := h.Submit.Disable(LoadingLabel)
	defer restore()

	h.Status.Clear()

	result := h.Workflow.Submit(ctx, h.Form.Values())
	h.Status.Show(StatusFor(result))
	if result.Success {
		h.Form.Reset()
	}
	return result, nil
}

// InFlight reports whether a submission is being delivered.
func (h *Handler) InFlight() bool {
	return h.busy.Load()
}
