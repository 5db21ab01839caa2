package ui

// MenuHint is one entry of the header key menu.
type MenuHint struct {
	Key         string
	Description string
	// Range marks digit ranges such as the tab keys 1-6 or the sticker
	// picks 1-9, drawn in the numeric key color.
	Range bool
}

// Component is a screen that can sit on the page stack.
type Component interface {
	// Name is the crumb label. The thread uses the open chat's name.
	Name() string
	Init()
	Start()
	Stop()
	// Hints lists the screen's own keys; global keys live in the registry.
	Hints() []MenuHint
}
