package app

import (
	"fmt"

	"noteplus/internal/command"
)

// registerHandlers binds the actions whose behavior is part of the shell
// itself. Everything else is left to whoever owns the registry.
func (r *Running) registerHandlers() {
	r.handlers = map[command.Action]command.Handler{
		command.ToggleSidebar:      r.handler("sidebar", r.toggleSidebar),
		command.ToggleSidebarWidth: r.handler("sidebar-width", r.toggleSidebarWidth),
		command.Exit:               r.handler("exit", r.exit),
	}
	for action, h := range r.handlers {
		r.registry.Register(action, h)
	}
}

func (r *Running) unregisterHandlers() {
	for action, h := range r.handlers {
		r.registry.Unregister(action, h)
	}
	r.handlers = nil
}

// handler ids carry the instance address so two shells can share a registry
func (r *Running) handler(name string, fn func()) command.Handler {
	return command.NewHandler(fmt.Sprintf("shell.%s.%p", name, r), func(command.Action) { fn() })
}

func (r *Running) toggleSidebar() {
	r.state.SidebarVisible = !r.state.SidebarVisible
	r.logger.Debug("Shell", "sidebar toggled", map[string]interface{}{
		"visible": r.state.SidebarVisible,
	})
}

func (r *Running) toggleSidebarWidth() {
	r.state.SidebarExpanded = !r.state.SidebarExpanded
	r.logger.Debug("Shell", "sidebar width toggled", map[string]interface{}{
		"expanded": r.state.SidebarExpanded,
	})
}

func (r *Running) exit() {
	r.logger.Info("Shell", "exit requested", nil)
	r.RequestClose()
}
