// Package events provides the application's event dispatch layer.
//
// Filters subscribe for a first look at every event before the
// per-screen handler runs. The explicit subscription API replaces
// implicit global event filter registration, so observation order is
// exactly subscription order.
package events

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// Filter observes every dispatched event before normal handling.
type Filter interface {
	// FilterEvent returns true to consume the event, stopping later
	// filters and the handler from seeing it.
	FilterEvent(event sdl.Event) bool
}

// Handler processes events no filter consumed.
type Handler func(event sdl.Event)

// Dispatcher fans incoming events out to subscribed filters and then
// the handler, and carries the event loop's quit state.
//
// Subscribe, SetHandler, and Dispatch belong to the loop thread; Quit
// and Quitting are safe from any goroutine.
type Dispatcher struct {
	filters  []Filter
	handler  Handler
	claimed  *atomic.Bool
	quitting *atomic.Bool
	exitCode *atomic.Int32
}

// NewDispatcher creates a Dispatcher with no filters and no handler.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		claimed:  atomic.NewBool(false),
		quitting: atomic.NewBool(false),
		exitCode: atomic.NewInt32(0),
	}
}

// Subscribe appends a filter to the chain. Filters run in
// subscription order.
func (d *Dispatcher) Subscribe(f Filter) {
	d.filters = append(d.filters, f)
}

// SetHandler installs the handler run after the filter chain.
func (d *Dispatcher) SetHandler(h Handler) {
	d.handler = h
}

// Dispatch routes one event through the filter chain and, if no
// filter consumed it, to the handler.
func (d *Dispatcher) Dispatch(event sdl.Event) {
	for _, f := range d.filters {
		if f.FilterEvent(event) {
			return
		}
	}
	if d.handler != nil {
		d.handler(event)
	}
}

// Quit requests event loop exit with the given code. The first call
// wins; later calls do not change the code.
func (d *Dispatcher) Quit(code int) {
	if d.claimed.CompareAndSwap(false, true) {
		// Code is published before the quitting flag so the loop
		// never reads a stale code after observing the flag.
		d.exitCode.Store(int32(code))
		d.quitting.Store(true)
	}
}

// Quitting reports whether exit has been requested.
func (d *Dispatcher) Quitting() bool {
	return d.quitting.Load()
}

// ExitCode returns the code supplied to Quit, or 0.
func (d *Dispatcher) ExitCode() int {
	return int(d.exitCode.Load())
}
