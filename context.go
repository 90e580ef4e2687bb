package birb

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// InterruptibleContext returns a context which is canceled on SIGINT or
// SIGTERM, e.g. to stop probing repositories for many packages.
func InterruptibleContext() (context.Context, context.CancelFunc) {
	ctx, canc := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
		}
		// Stop relaying signals: once canceled, a further signal terminates
		// immediately, which is useful in case cleanup hangs.
		signal.Stop(sig)
		canc()
	}()
	return ctx, canc
}
