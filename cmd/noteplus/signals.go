package main

import (
	"context"
	"os"
	"os/signal"
)

// interruptContext is cancelled by the first of sigs. Delivery is restored
// to the default right after, so a repeated signal kills a stalled loop.
func interruptContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, sigs...)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}
