package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/core"
)

// EventSource is anything that can block for the next terminal event
// tcell.Screen satisfies it; PollEvent returns nil once the source is finalized
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller turns a blocking event source into a poll with a bounded wait
type Poller struct {
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
}

// NewPoller starts pumping events from src
func NewPoller(src EventSource) *Poller {
	p := &Poller{
		events: make(chan tcell.Event, 64),
		done:   make(chan struct{}),
	}

	core.Go(func() {
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			select {
			case p.events <- ev:
			case <-p.done:
				return
			}
		}
	})

	return p
}

// Poll waits up to timeout for the next event and returns nil if none arrived
// A non-positive timeout only drains an already queued event
func (p *Poller) Poll(timeout time.Duration) tcell.Event {
	if timeout <= 0 {
		select {
		case ev := <-p.events:
			return ev
		default:
			return nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-p.events:
		return ev
	case <-timer.C:
		return nil
	case <-p.done:
		return nil
	}
}

// Close stops forwarding; the pump exits after the source returns its next event or nil
func (p *Poller) Close() {
	p.once.Do(func() { close(p.done) })
}
