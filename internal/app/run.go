package app

import (
	"context"

	"noteplus/internal/logger"
)

const (
	ExitOK          = 0
	ExitInitFailure = -1
)

// Run initializes the shell, renders frames until the close flag is set and
// shuts down. Cancelling ctx sets the close flag at the start of the next
// iteration, so teardown still happens on the calling goroutine.
func Run(ctx context.Context, cfg Config, deps Deps) int {
	log := deps.Logger
	if log == nil {
		log = logger.NoOpLogger{}
	}

	shell, err := Initialize(cfg, deps)
	if err != nil {
		log.Error("Shell", err, map[string]interface{}{
			"stage": "initialize",
		})
		return ExitInitFailure
	}

	done := ctx.Done()
	for {
		select {
		case <-done:
			log.Info("Shell", "shutdown requested", map[string]interface{}{
				"reason": context.Cause(ctx).Error(),
			})
			shell.RequestClose()
			done = nil
		default:
		}

		if !shell.RenderFrame() {
			break
		}
	}

	if err := shell.Shutdown(); err != nil {
		log.Error("Shell", err, nil)
	}
	return ExitOK
}
