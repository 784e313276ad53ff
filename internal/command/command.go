// Package command routes UI actions to handlers. The shell declares which
// action a widget triggers; what the action does is decided by whoever
// registered a handler for it.
package command

import (
	"fmt"
	"sync"

	"noteplus/internal/logger"
)

type Action string

const (
	ToggleSidebar      Action = "sidebar.toggle"
	ToggleSidebarWidth Action = "sidebar.width"
	Paste              Action = "edit.paste"
	Cut                Action = "edit.cut"
	Copy               Action = "edit.copy"
	InsertPicture      Action = "insert.picture"
	InsertTable        Action = "insert.table"
	OpenFile           Action = "file.open"
	Settings           Action = "app.settings"
	Exit               Action = "app.exit"
)

// Inert lists the actions that have no behavior inside the shell
var Inert = []Action{Paste, Cut, Copy, InsertPicture, InsertTable, OpenFile, Settings}

// Handler reacts to a dispatched action
type Handler interface {
	Handle(action Action)
	GetID() string
}

type funcHandler struct {
	id string
	fn func(Action)
}

func (f funcHandler) Handle(action Action) { f.fn(action) }
func (f funcHandler) GetID() string        { return f.id }

// NewHandler wraps fn as a Handler identified by id
func NewHandler(id string, fn func(Action)) Handler {
	return funcHandler{id: id, fn: fn}
}

// Registry dispatches actions synchronously to their handlers in
// registration order.
type Registry struct {
	handlers map[Action][]Handler
	mu       sync.RWMutex
	logger   logger.Logger
}

func NewRegistry(log logger.Logger) *Registry {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Registry{
		handlers: make(map[Action][]Handler),
		logger:   log,
	}
}

func (r *Registry) Register(action Action, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[action] = append(r.handlers[action], handler)
}

func (r *Registry) Unregister(action Action, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handlers := r.handlers[action]
	for i, h := range handlers {
		if h.GetID() == handler.GetID() {
			r.handlers[action] = append(handlers[:i:i], handlers[i+1:]...)
			break
		}
	}
}

// Handlers returns how many handlers are registered for action
func (r *Registry) Handlers(action Action) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[action])
}

// Dispatch runs every handler registered for action and reports whether
// there was at least one.
func (r *Registry) Dispatch(action Action) bool {
	r.mu.RLock()
	handlers := make([]Handler, len(r.handlers[action]))
	copy(handlers, r.handlers[action])
	r.mu.RUnlock()

	if len(handlers) == 0 {
		r.logger.Debug("Registry", "no handler for action", map[string]interface{}{
			"action": string(action),
		})
		return false
	}

	for _, h := range handlers {
		r.invoke(action, h)
	}
	return true
}

func (r *Registry) invoke(action Action, h Handler) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Registry", fmt.Errorf("handler panicked: %v", rec), map[string]interface{}{
				"action":  string(action),
				"handler": h.GetID(),
			})
		}
	}()
	h.Handle(action)
}

// Placeholder returns a handler that only records that action was asked for
func Placeholder(log logger.Logger) Handler {
	return NewHandler("placeholder", func(action Action) {
		log.Info("Command", "action not implemented", map[string]interface{}{
			"action": string(action),
		})
	})
}

// RegisterPlaceholders binds Placeholder to every inert action
func RegisterPlaceholders(r *Registry, log logger.Logger) {
	h := Placeholder(log)
	for _, action := range Inert {
		r.Register(action, h)
	}
}
