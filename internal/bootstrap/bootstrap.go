package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// Bootstrapper initialises the email library with the public key once it
// is available.
type Bootstrapper struct {
	Poller    *Poller
	Init      func(publicKey string)
	PublicKey string
	Logger    *zap.Logger
}

// Run waits for the library and reports whether it was initialised. A
// library that never loads is a normal outcome, not an error.
func (b *Bootstrapper) Run(ctx context.Context) bool {
	outcome, ticks := b.Poller.Wait(ctx)
	if outcome != Found {
		b.Logger.Error("EmailJS library not loaded",
			zap.Stringer("outcome", outcome),
			zap.Int("attempts", ticks))
		return false
	}

	b.Init(b.PublicKey)
	b.Logger.Info("EmailJS initialized successfully", zap.Int("attempts", ticks))
	return true
}
