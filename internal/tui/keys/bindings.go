package keys

import "github.com/gdamore/tcell/v2"

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Label       string
	Description string
	Handler     func()
	Visible     bool
}

// Matches returns true if the event matches this action.
func (a *Action) Matches(ev *tcell.EventKey) bool {
	if a.Key != tcell.KeyRune {
		return ev.Key() == a.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == a.Rune
}

// Hint is a visible binding as listed in the menu and help page.
type Hint struct {
	Key         string
	Description string
}

type scope struct {
	names   []string
	actions map[string]*Action
}

func newScope() *scope {
	return &scope{actions: make(map[string]*Action)}
}

func (s *scope) add(name string, a *Action) {
	if _, ok := s.actions[name]; !ok {
		s.names = append(s.names, name)
	}
	s.actions[name] = a
}

func (s *scope) each(fn func(*Action) bool) bool {
	for _, n := range s.names {
		if fn(s.actions[n]) {
			return true
		}
	}
	return false
}

// Registry holds keybindings organized by scope. Bindings keep their
// registration order for dispatch and hints.
type Registry struct {
	global *scope
	views  map[string]*scope
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		global: newScope(),
		views:  make(map[string]*scope),
	}
}

// AddGlobal registers a global keybinding. Re-registering a name replaces it.
func (r *Registry) AddGlobal(name string, action *Action) {
	r.global.add(name, action)
}

// AddView registers a view-specific keybinding.
func (r *Registry) AddView(view, name string, action *Action) {
	s, ok := r.views[view]
	if !ok {
		s = newScope()
		r.views[view] = s
	}
	s.add(name, action)
}

// Hints returns visible bindings for a view, view-specific ones first.
func (r *Registry) Hints(view string) []Hint {
	return append(r.ViewHints(view), r.GlobalHints()...)
}

// ViewHints returns the visible bindings registered for view only.
func (r *Registry) ViewHints(view string) []Hint {
	s, ok := r.views[view]
	if !ok {
		return nil
	}
	return s.hints()
}

// GlobalHints returns the visible global bindings.
func (r *Registry) GlobalHints() []Hint {
	return r.global.hints()
}

func (s *scope) hints() []Hint {
	var hints []Hint
	s.each(func(a *Action) bool {
		if a.Visible {
			hints = append(hints, Hint{Key: a.Label, Description: a.Description})
		}
		return false
	})
	return hints
}

// HandleEvent dispatches a key event to matching action in the given view.
// Returns true if a handler matched.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	run := func(a *Action) bool {
		if !a.Matches(ev) {
			return false
		}
		if a.Handler != nil {
			a.Handler()
		}
		return true
	}
	// View-specific bindings shadow global ones.
	if s, ok := r.views[view]; ok && s.each(run) {
		return true
	}
	return r.global.each(run)
}
