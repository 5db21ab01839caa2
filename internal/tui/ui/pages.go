package ui

import (
	"slices"

	"github.com/rivo/tview"
)

// Pages keeps the navigation stack of the client: the chat list at the
// bottom, then at most one each of thread, details, stickers, link and help
// above it. The stack drives the crumb bar through SetOnChange.
type Pages struct {
	*tview.Pages
	stack    []string
	onChange func(stack []string)
}

// NewPages returns an empty stack.
func NewPages() *Pages {
	return &Pages{
		Pages: tview.NewPages(),
	}
}

// SetOnChange registers the callback fired with a copy of the stack after
// every change.
func (p *Pages) SetOnChange(fn func(stack []string)) {
	p.onChange = fn
}

// Push shows name on top of the stack. Pushing the page already on top is a
// no-op, so repeated keys never stack the same overlay twice.
func (p *Pages) Push(name string) {
	if p.Current() == name {
		return
	}
	if len(p.stack) > 0 {
		p.HidePage(p.stack[len(p.stack)-1])
	}
	p.stack = append(p.stack, name)
	p.show(name)
	p.notify()
}

// Pop drops the top page and returns its name, or "" on an empty stack.
func (p *Pages) Pop() string {
	if len(p.stack) == 0 {
		return ""
	}
	top := p.stack[len(p.stack)-1]
	p.HidePage(top)
	p.stack = p.stack[:len(p.stack)-1]
	if len(p.stack) > 0 {
		p.show(p.stack[len(p.stack)-1])
	}
	p.notify()
	return top
}

// Raise makes name the top page. Overlays above an existing entry are
// dropped in one step; a missing page is pushed over the root.
func (p *Pages) Raise(name string) {
	i := slices.Index(p.stack, name)
	if i < 0 {
		for len(p.stack) > 1 {
			p.HidePage(p.stack[len(p.stack)-1])
			p.stack = p.stack[:len(p.stack)-1]
		}
		p.Push(name)
		return
	}
	if i == len(p.stack)-1 {
		return
	}
	for _, n := range p.stack[i+1:] {
		p.HidePage(n)
	}
	p.stack = p.stack[:i+1]
	p.show(name)
	p.notify()
}

// Contains reports whether name is anywhere on the stack.
func (p *Pages) Contains(name string) bool {
	return slices.Contains(p.stack, name)
}

// Current returns the top page, or "".
func (p *Pages) Current() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// Stack returns a copy of the stack, bottom first.
func (p *Pages) Stack() []string {
	return slices.Clone(p.stack)
}

// Depth returns the stack size.
func (p *Pages) Depth() int {
	return len(p.stack)
}

// Reset hides everything and leaves only name, used when the open
// conversation is closed from outside the client.
func (p *Pages) Reset(name string) {
	for _, n := range p.stack {
		p.HidePage(n)
	}
	p.stack = []string{name}
	p.show(name)
	p.notify()
}

func (p *Pages) show(name string) {
	p.ShowPage(name)
	p.SendToFront(name)
}

func (p *Pages) notify() {
	if p.onChange != nil {
		p.onChange(p.Stack())
	}
}
