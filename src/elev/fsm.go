// Contains the phase state machine that drives a single request from pickup to dropoff.
package elev

import (
	"log/slog"

	"liftsim/src/types"
)

// enqueue appends a validated request and starts dispatch if the car is standing.
func (c *Controller) enqueue(req types.Request) error {
	if err := c.maintenance.Validate(req.From, req.To); err != nil {
		slog.Warn("Request rejected", "request", req.String(), "err", err)
		return err
	}
	c.state.Pending = append(c.state.Pending, req)
	slog.Info("Request queued", "request", req.String(), "pending", len(c.state.Pending))
	c.observer.OnRouteChanged(copyRoute(c.state.Pending))

	if c.state.Status == types.Standing {
		c.dispatchNext()
	}
	return nil
}

// dispatchNext pops the oldest request and starts its first phase, or parks
// the car when the queue is empty.
func (c *Controller) dispatchNext() {
	if len(c.state.Pending) == 0 {
		c.park()
		return
	}
	req := c.state.Pending[0]
	c.state.Pending = c.state.Pending[1:]
	c.state.Active = &req
	slog.Info("Dispatching request", "request", req.String(), "floor", c.state.Floor)
	c.observer.OnRouteChanged(copyRoute(c.state.Pending))

	c.setStatus(types.Moving)
	heading := types.DirectionTo(c.state.Floor, req.From)
	if heading == types.Idle {
		heading = types.DirectionTo(req.From, req.To)
	}
	c.setDir(heading)
	c.enterPhase(types.PhaseToPickup)
}

func (c *Controller) enterPhase(phase types.Phase) {
	slog.Debug("Entering phase", "phase", phase, "floor", c.state.Floor)
	c.state.Phase = phase
	switch phase {
	case types.PhaseToPickup, types.PhaseToDropoff:
		c.step()
	case types.PhasePickupDoors, types.PhaseDropoffDoors:
		c.openDoor()
	}
}

// handleTimeout advances the running phase after the phase timer expires.
func (c *Controller) handleTimeout() {
	switch c.state.Phase {
	case types.PhaseToPickup, types.PhaseToDropoff:
		c.step()
	case types.PhasePickupDoors, types.PhaseDropoffDoors:
		c.handleDoorTimeout()
	default:
		slog.Debug("Timeout ignored - no active phase")
	}
}

// step moves the car one floor toward the phase target, or opens the door
// once the target is reached.
func (c *Controller) step() {
	target := c.state.Phase.Target(*c.state.Active)
	if c.state.Floor == target {
		c.enterPhase(c.state.Phase + 1)
		return
	}
	dir := types.DirectionTo(c.state.Floor, target)
	c.setDir(dir)
	c.state.Floor += dir.Step()
	slog.Debug("Passing floor", "floor", c.state.Floor, "target", target, "direction", dir)
	c.observer.OnFloorChanged(c.state.Floor)
	c.phaseTimer.Start(c.cfg.StepDuration)
}

func (c *Controller) openDoor() {
	c.setDoor(types.Opening)
	c.phaseTimer.Start(c.cfg.DoorOpeningDuration)
}

func (c *Controller) handleDoorTimeout() {
	switch c.state.Door {
	case types.Opening:
		c.setDoor(types.Open)
		c.phaseTimer.Start(c.cfg.DoorOpenDuration)
	case types.Open:
		c.setDoor(types.Closing)
		c.phaseTimer.Start(c.cfg.DoorClosingDuration)
	case types.Closing:
		c.setDoor(types.Closed)
		c.completeStop()
	default:
		slog.Warn("Door timeout with closed door", "phase", c.state.Phase, "floor", c.state.Floor)
	}
}

// completeStop resumes after a finished door cycle.
func (c *Controller) completeStop() {
	if c.state.Phase == types.PhasePickupDoors {
		c.enterPhase(types.PhaseToDropoff)
		return
	}
	slog.Info("Request completed", "request", c.state.Active.String(), "floor", c.state.Floor)
	c.state.Active = nil
	c.dispatchNext()
}

func (c *Controller) park() {
	c.state.Phase = types.PhaseIdle
	c.state.Active = nil
	c.setDir(types.Idle)
	c.setStatus(types.Standing)
	slog.Info("Elevator standing", "floor", c.state.Floor)
}

func (c *Controller) setDir(dir types.Direction) {
	if c.state.Dir == dir {
		return
	}
	c.state.Dir = dir
	c.observer.OnDirectionChanged(dir)
}

func (c *Controller) setDoor(door types.DoorState) {
	if c.state.Door == door {
		return
	}
	c.state.Door = door
	slog.Debug("Door state changed", "door", door, "floor", c.state.Floor)
	c.observer.OnDoorStateChanged(door)
}

func (c *Controller) setStatus(status types.MovementStatus) {
	if c.state.Status == status {
		return
	}
	c.state.Status = status
	c.observer.OnStatusChanged(status)
}
