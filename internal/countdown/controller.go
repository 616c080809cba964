package countdown

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"nextloop-web/internal/readmodel"
)

// Controller recomputes the countdown display once per second from the live
// end time in the read-model store. The Running→Ended transition is one-way:
// after emitting the terminal state the controller stops itself.
type Controller struct {
	store  *readmodel.Store
	clock  clockwork.Clock
	onTick func(display string, ended bool)
}

// NewController creates a countdown controller. onTick is invoked from the
// controller goroutine; it must be safe to call from there.
func NewController(store *readmodel.Store, clock clockwork.Clock, onTick func(display string, ended bool)) *Controller {
	return &Controller{
		store:  store,
		clock:  clock,
		onTick: onTick,
	}
}

// Run drives the 1 Hz loop until the auction ends or ctx is cancelled.
// The first emission happens immediately so the initial render is never blank.
func (c *Controller) Run(ctx context.Context) {
	if c.emit() {
		return
	}

	ticker := c.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if c.emit() {
				return
			}
		}
	}
}

// emit recomputes the display from the live end time and reports whether the
// terminal state was reached.
func (c *Controller) emit() bool {
	display, ended := Format(c.store.EndTime(), c.clock.Now())
	c.onTick(display, ended)
	return ended
}
