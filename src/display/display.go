// Package display renders controller state changes as text.
package display

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"liftsim/src/types"
	"liftsim/src/utils"
)

// Display mirrors the elevator screen: a car column, the current floor, the
// route, the direction and the status. It implements elev.Observer.
type Display struct {
	mu        sync.Mutex
	out       io.Writer
	numFloors int
	floor     types.Floor
	dir       types.Direction
	door      types.DoorState
	status    types.MovementStatus
	route     []types.Request
	verbose   bool
}

// New renders to out. In verbose mode the full screen is redrawn on every
// change, otherwise a single status line is printed.
func New(out io.Writer, numFloors int, ground types.Floor, verbose bool) *Display {
	return &Display{out: out, numFloors: numFloors, floor: ground, verbose: verbose}
}

func (d *Display) OnFloorChanged(floor types.Floor) {
	d.update(func() { d.floor = floor })
}

func (d *Display) OnDirectionChanged(dir types.Direction) {
	d.update(func() { d.dir = dir })
}

func (d *Display) OnDoorStateChanged(door types.DoorState) {
	d.update(func() { d.door = door })
}

func (d *Display) OnStatusChanged(status types.MovementStatus) {
	d.update(func() { d.status = status })
}

func (d *Display) OnRouteChanged(route []types.Request) {
	d.update(func() { d.route = route })
}

// Apply renders one event received from an elev.ChanObserver.
func (d *Display) Apply(ev types.Event) {
	switch ev.Kind {
	case types.FloorChanged:
		d.OnFloorChanged(ev.Floor)
	case types.DirectionChanged:
		d.OnDirectionChanged(ev.Dir)
	case types.DoorStateChanged:
		d.OnDoorStateChanged(ev.Door)
	case types.StatusChanged:
		d.OnStatusChanged(ev.Status)
	case types.RouteChanged:
		d.OnRouteChanged(ev.Route)
	}
}

// Run renders events until the channel closes or ctx is cancelled, so slow
// output never holds up the controller.
func (d *Display) Run(ctx context.Context, events <-chan types.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			d.Apply(ev)
		}
	}
}

func (d *Display) update(apply func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	apply()
	if d.verbose {
		fmt.Fprint(d.out, d.screen())
	} else {
		fmt.Fprintln(d.out, d.statusLine())
	}
}

// StatusText is the status label. Door activity takes precedence over movement.
func StatusText(status types.MovementStatus, door types.DoorState) string {
	switch door {
	case types.Opening:
		return "Doors Opening"
	case types.Open:
		return "Doors Open"
	case types.Closing:
		return "Doors Closing"
	}
	return status.String()
}

// CarColumn projects the car position onto one row per floor, top floor first.
func CarColumn(numFloors int, floor types.Floor) []string {
	rows := make([]string, numFloors)
	utils.ForEachFloor(numFloors, func(f types.Floor) {
		cell := ""
		if f == floor {
			cell = "Elevator"
		}
		rows[numFloors-int(f)] = cell
	})
	return rows
}

func (d *Display) statusLine() string {
	return fmt.Sprintf("Current Floor: %d | Route: %s | Direction: %s | Status: %s",
		d.floor, utils.FormatRoute(d.route), d.dir, StatusText(d.status, d.door))
}

func (d *Display) screen() string {
	var b strings.Builder
	for i, cell := range CarColumn(d.numFloors, d.floor) {
		fmt.Fprintf(&b, "%-10s Floor %d\n", cell, d.numFloors-i)
	}
	fmt.Fprintf(&b, "Current Floor: %d\n", d.floor)
	fmt.Fprintf(&b, "Route: %s\n", utils.FormatRoute(d.route))
	fmt.Fprintf(&b, "Direction: %s\n", d.dir)
	fmt.Fprintf(&b, "Status: %s\n\n", StatusText(d.status, d.door))
	return b.String()
}
