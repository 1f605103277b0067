package contact

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/apperr"
	"github.com/Zachkp/portfolio-widgets/internal/emailjs"
)

const (
	MsgSent       = "Message sent successfully! I'll get back to you soon."
	MsgNotLoaded  = "EmailJS is not loaded. Please refresh the page and try again."
	MsgSendFailed = "Failed to send message. Please try again or email me directly."
)

// Result is what every submission resolves to.
type Result struct {
	Success bool
	Message string
}

// Workflow validates a submission and hands it to whichever EmailJS sender
// is attached to Slot.
type Workflow struct {
	Slot           *emailjs.Slot
	ServiceID      string
	TemplateID     string
	AutoResponseID string
	Logger         *zap.Logger
}

// Submit never returns an error; failures are folded into the Result.
func (w *Workflow) Submit(ctx context.Context, sub Submission) Result {
	id := uuid.NewString()
	log := w.Logger.With(zap.String("submission", id))

	if err := w.deliver(ctx, sub.Trimmed(), log); err != nil {
		log.Warn("Contact submission failed", zap.Error(err))
		return Result{Success: false, Message: failureMessage(err)}
	}
	return Result{Success: true, Message: MsgSent}
}

func (w *Workflow) deliver(ctx context.Context, sub Submission, log *zap.Logger) error {
	sender := w.Slot.Get()
	if sender == nil {
		return apperr.NewDependencyError(MsgNotLoaded, "emailjs")
	}
	if err := Validate(sub); err != nil {
		return err
	}

	params := emailjs.TemplateParams{
		FromName:  sub.Name,
		FromEmail: sub.Email,
		Message:   sub.Message,
	}

	log.Info("Sending notification email")
	resp, err := sender.Send(ctx, w.ServiceID, w.TemplateID, params)
	if err != nil {
		return apperr.NewDeliveryError(errorText(err), w.ServiceID, w.TemplateID, err)
	}
	log.Info("Email sent successfully", zap.Int("status", resp.Status))

	if w.AutoResponseID != "" {
		if _, err := sender.Send(ctx, w.ServiceID, w.AutoResponseID, params); err != nil {
			log.Warn("Auto-response failed", zap.String("template", w.AutoResponseID), zap.Error(err))
		}
	}
	return nil
}

// errorText is the message carried by a send error, if any.
func errorText(err error) string {
	var ee *emailjs.Error
	if errors.As(err, &ee) {
		return ee.Text
	}
	return err.Error()
}

func failureMessage(err error) string {
	var (
		de *apperr.DependencyError
		ve *apperr.ValidationError
		se *apperr.DeliveryError
	)
	switch {
	case errors.As(err, &de):
		return de.Message
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &se) && se.Message != "":
		return se.Message
	default:
		return MsgSendFailed
	}
}
