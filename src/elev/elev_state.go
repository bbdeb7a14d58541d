package elev

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/maintenance"
	"liftsim/src/types"
)

// Start launches the owner goroutine. The controller stops when ctx is
// cancelled or Close is called. A controller runs at most once; later calls
// are ignored.
func (c *Controller) Start(ctx context.Context) {
	if !c.started.CompareAndSwap(false, true) {
		slog.Warn("Elevator controller already started")
		return
	}
	ctx, c.cancel = context.WithCancel(ctx)
	slog.Info("Elevator controller started", "floor", c.state.Floor, "numFloors", c.cfg.NumFloors)
	c.running.Store(true)
	go c.run(ctx)
}

// Close stops the owner goroutine and waits for it to exit. Any request in
// flight is abandoned.
func (c *Controller) Close() {
	if !c.running.Load() {
		return
	}
	c.cancel()
	<-c.done
}

func (c *Controller) run(ctx context.Context) {
	defer close(c.done)
	defer c.running.Store(false)
	for {
		select {
		case cmd := <-c.cmds:
			cmd.Exec(c)
		case <-c.phaseTimer.C():
			c.phaseTimer.Fired()
			c.handleTimeout()
		case <-ctx.Done():
			if c.phaseTimer.Active() {
				slog.Warn("Abandoning request in flight", "phase", c.state.Phase, "floor", c.state.Floor)
			}
			c.phaseTimer.Stop()
			slog.Info("Elevator controller stopped", "floor", c.state.Floor, "pending", len(c.state.Pending))
			return
		}
	}
}

// execute runs fn on the owner goroutine and waits for it to finish.
func (c *Controller) execute(fn func(c *Controller)) error {
	if !c.running.Load() {
		return ErrNotRunning
	}
	reply := make(chan struct{})
	select {
	case c.cmds <- elevCmd{
		Exec: func(c *Controller) {
			fn(c)
			close(reply)
		},
	}:
	case <-c.done:
		return ErrNotRunning
	}
	<-reply
	return nil
}

// Enqueue validates and queues a ride. Invalid requests return a
// *types.ValidationError and leave the controller untouched. When the car is
// standing the request is dispatched at once.
func (c *Controller) Enqueue(from, to types.Floor) error {
	var err error
	if execErr := c.execute(func(c *Controller) {
		err = c.enqueue(types.Request{From: from, To: to})
	}); execErr != nil {
		return execErr
	}
	return err
}

// SetMaintenance installs the snapshot that later requests are validated against.
// The snapshot must cover the same floors as the controller.
func (c *Controller) SetMaintenance(snapshot maintenance.Snapshot) error {
	if snapshot.NumFloors() != c.cfg.NumFloors {
		return fmt.Errorf("maintenance snapshot covers %d floors, controller has %d", snapshot.NumFloors(), c.cfg.NumFloors)
	}
	return c.execute(func(c *Controller) {
		c.maintenance = snapshot
		slog.Debug("Maintenance snapshot installed", "floors", snapshot.OutOfService())
	})
}

// State returns a deep copy of the controller state.
func (c *Controller) State() (types.ElevState, error) {
	var clone types.ElevState
	err := c.execute(func(c *Controller) {
		clone = copyState(c.state)
	})
	return clone, err
}

func (c *Controller) Route() ([]types.Request, error) {
	state, err := c.State()
	return state.Pending, err
}

func (c *Controller) CurrentFloor() (types.Floor, error) {
	state, err := c.State()
	return state.Floor, err
}

// EstimateDrain returns the simulated time until the car is standing again.
func (c *Controller) EstimateDrain() (time.Duration, error) {
	var d time.Duration
	err := c.execute(func(c *Controller) {
		d = Cost(c.cfg, c.state)
	})
	return d, err
}

func copyState(s types.ElevState) types.ElevState {
	var clone types.ElevState
	if err := deepcopy.Copy(&clone, s); err != nil {
		panic(err)
	}
	return clone
}

func copyRoute(route []types.Request) []types.Request {
	clone := make([]types.Request, 0, len(route))
	if err := deepcopy.Copy(&clone, route); err != nil {
		panic(err)
	}
	return clone
}
