package elev

import (
	"log/slog"
	"sync/atomic"

	"liftsim/src/types"
)

// Observer receives state changes synchronously from the controller
// goroutine, in the order they happen. Implementations must return promptly
// and must not call back into the Controller.
type Observer interface {
	OnFloorChanged(floor types.Floor)
	OnDirectionChanged(dir types.Direction)
	OnDoorStateChanged(door types.DoorState)
	OnStatusChanged(status types.MovementStatus)
	OnRouteChanged(route []types.Request)
}

// Observers fans each change out to every member in order.
type Observers []Observer

func (obs Observers) OnFloorChanged(floor types.Floor) {
	for _, o := range obs {
		o.OnFloorChanged(floor)
	}
}

func (obs Observers) OnDirectionChanged(dir types.Direction) {
	for _, o := range obs {
		o.OnDirectionChanged(dir)
	}
}

func (obs Observers) OnDoorStateChanged(door types.DoorState) {
	for _, o := range obs {
		o.OnDoorStateChanged(door)
	}
}

func (obs Observers) OnStatusChanged(status types.MovementStatus) {
	for _, o := range obs {
		o.OnStatusChanged(status)
	}
}

func (obs Observers) OnRouteChanged(route []types.Request) {
	for _, o := range obs {
		o.OnRouteChanged(route)
	}
}

// ChanObserver forwards every change as a types.Event. Sends never block the
// controller: when the buffer is full the event is dropped and counted.
type ChanObserver struct {
	Events  chan types.Event
	dropped atomic.Uint64
}

func NewChanObserver(buffer int) *ChanObserver {
	return &ChanObserver{Events: make(chan types.Event, buffer)}
}

// Dropped is the number of events discarded because the reader fell behind.
func (o *ChanObserver) Dropped() uint64 {
	return o.dropped.Load()
}

func (o *ChanObserver) send(ev types.Event) {
	select {
	case o.Events <- ev:
	default:
		n := o.dropped.Add(1)
		slog.Warn("Event buffer full, dropping event", "event", ev.String(), "dropped", n)
	}
}

func (o *ChanObserver) OnFloorChanged(floor types.Floor) {
	o.send(types.Event{Kind: types.FloorChanged, Floor: floor})
}

func (o *ChanObserver) OnDirectionChanged(dir types.Direction) {
	o.send(types.Event{Kind: types.DirectionChanged, Dir: dir})
}

func (o *ChanObserver) OnDoorStateChanged(door types.DoorState) {
	o.send(types.Event{Kind: types.DoorStateChanged, Door: door})
}

func (o *ChanObserver) OnStatusChanged(status types.MovementStatus) {
	o.send(types.Event{Kind: types.StatusChanged, Status: status})
}

func (o *ChanObserver) OnRouteChanged(route []types.Request) {
	o.send(types.Event{Kind: types.RouteChanged, Route: route})
}
