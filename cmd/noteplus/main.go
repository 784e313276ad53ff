package main

import (
	"context"
	"os"
	"runtime"
	"syscall"

	"noteplus/internal/app"
	"noteplus/internal/command"
	"noteplus/internal/logger"
	"noteplus/internal/platform/glfwbackend"
	"noteplus/internal/ui/imguibackend"
)

func init() {
	// GLFW and OpenGL must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := interruptContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	log := logger.New()
	log.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
	})

	registry := command.NewRegistry(log)
	command.RegisterPlaceholders(registry, log)

	code := app.Run(ctx, app.DefaultConfig(), app.Deps{
		Platform: glfwbackend.New(log),
		Toolkit:  imguibackend.New(log),
		Registry: registry,
		Logger:   log,
	})

	stop()
	os.Exit(code)
}
