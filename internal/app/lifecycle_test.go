package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteplus/internal/command"
	"noteplus/internal/ui"
)

func TestShutdownOrder(t *testing.T) {
	h := newHarness()
	r := h.start(t)
	require.True(t, r.RenderFrame())
	mark := len(h.j.calls)

	require.NoError(t, r.Shutdown())

	assert.Equal(t, []string{
		"renderer.shutdown",
		"input.shutdown",
		"ui.destroy_context",
		"window.destroy",
		"platform.terminate",
	}, h.j.since(mark))
	assert.Zero(t, h.registry.Handlers(command.ToggleSidebar))
}

func TestShutdownTwice(t *testing.T) {
	h := newHarness()
	r := h.start(t)
	require.NoError(t, r.Shutdown())
	mark := len(h.j.calls)

	assert.ErrorIs(t, r.Shutdown(), ErrShutdown)
	assert.False(t, r.RenderFrame())
	assert.NotPanics(t, r.RequestClose)
	assert.Empty(t, h.j.since(mark))
}

func TestRunInitFailure(t *testing.T) {
	h := newHarness()
	h.platform.initErr = errors.New("no display")

	code := Run(context.Background(), DefaultConfig(), h.deps())

	assert.Equal(t, ExitInitFailure, code)
	assert.NotZero(t, code)
	assert.Equal(t, []string{"platform.init"}, h.j.calls)
}

func TestRunUntilExit(t *testing.T) {
	h := newHarness()
	frames := 0
	h.registry.Register(command.Paste, command.NewHandler("counter", func(command.Action) {
		frames++
		if frames == 3 {
			h.widgets().click("❌ Exit")
		} else {
			h.widgets().click("Paste")
		}
	}))

	deps := h.deps()
	deps.Toolkit = &clickingToolkit{fakeToolkit: h.toolkit, first: "Paste"}

	code := Run(context.Background(), DefaultConfig(), deps)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, 3, frames)
	assert.Equal(t, "platform.terminate", h.j.calls[len(h.j.calls)-1])
	// Exit is clicked during the third frame, which still completes.
	assert.Equal(t, 3, count(h.j.calls, "window.swap"))
}

func TestRunCancelledContext(t *testing.T) {
	h := newHarness()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := Run(ctx, DefaultConfig(), h.deps())

	assert.Equal(t, ExitOK, code)
	assert.Zero(t, count(h.j.calls, "window.swap"))
	assert.True(t, h.window().shouldClose)
	assert.Equal(t, "platform.terminate", h.j.calls[len(h.j.calls)-1])
}

// clickingToolkit queues a click on first as soon as the context exists
type clickingToolkit struct {
	*fakeToolkit
	first string
}

func (c *clickingToolkit) CreateContext() (ui.Context, error) {
	ctx, err := c.fakeToolkit.CreateContext()
	if err == nil {
		c.fakeToolkit.context.widgets.click(c.first)
	}
	return ctx, err
}

func count(calls []string, call string) int {
	n := 0
	for _, c := range calls {
		if c == call {
			n++
		}
	}
	return n
}
