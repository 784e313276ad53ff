package app

// Shutdown releases the UI bindings, the UI context, the window and the
// windowing library, in that order. Only the first call releases anything.
func (r *Running) Shutdown() error {
	if r.terminated {
		return ErrShutdown
	}

	r.logger.Info("Shell", "shutdown sequence initiated", nil)
	r.unregisterHandlers()
	r.release()

	stats := r.frames.Stats(frameOperation)
	r.logger.Debug("Shell", "frame summary", map[string]interface{}{
		"frames":      stats.Count,
		"avg_frame":   stats.Average().String(),
		"worst_frame": stats.Max.String(),
	})
	r.logger.Info("Shell", "shutdown sequence completed", nil)
	return nil
}

// release tears down whatever has been acquired, skipping parts that never
// were. It is also the cleanup path of a failed Initialize.
func (r *Running) release() {
	steps := []struct {
		name string
		fn   func()
	}{
		{"renderer binding", func() {
			if r.renderer != nil {
				r.renderer.Shutdown()
			}
		}},
		{"window binding", func() {
			if r.input != nil {
				r.input.Shutdown()
			}
		}},
		{"ui context", func() {
			if r.context != nil {
				r.context.Destroy()
			}
		}},
		{"window", r.window.Destroy},
		{"windowing library", r.platform.Terminate},
	}

	for _, step := range steps {
		step.fn()
		r.logger.Debug("Shell", "shutdown step completed", map[string]interface{}{
			"step": step.name,
		})
	}

	r.renderer, r.input, r.context, r.window = nil, nil, nil, nil
	r.terminated = true
}
