package types

import "fmt"

// Floor is a stop position in the range [1, NumFloors].
type Floor int

type Request struct {
	From Floor
	To   Floor
}

func (r Request) String() string {
	return fmt.Sprintf("%d->%d", r.From, r.To)
}

type Direction int

const (
	Idle Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "--"
	}
}

// Step is the floor increment for the direction.
func (d Direction) Step() Floor {
	switch d {
	case Up:
		return 1
	case Down:
		return -1
	}
	return 0
}

// DirectionTo returns the heading from one floor to another, Idle if equal.
func DirectionTo(from, to Floor) Direction {
	switch {
	case to > from:
		return Up
	case to < from:
		return Down
	}
	return Idle
}

type DoorState int

const (
	Closed DoorState = iota
	Opening
	Open
	Closing
)

func (d DoorState) String() string {
	switch d {
	case Opening:
		return "Opening"
	case Open:
		return "Open"
	case Closing:
		return "Closing"
	default:
		return "Closed"
	}
}

type MovementStatus int

const (
	Standing MovementStatus = iota
	Moving
)

func (s MovementStatus) String() string {
	if s == Moving {
		return "Moving"
	}
	return "Standing"
}

// Phase tags which leg of the active request is running.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseToPickup
	PhasePickupDoors
	PhaseToDropoff
	PhaseDropoffDoors
)

func (p Phase) String() string {
	switch p {
	case PhaseToPickup:
		return "ToPickup"
	case PhasePickupDoors:
		return "PickupDoors"
	case PhaseToDropoff:
		return "ToDropoff"
	case PhaseDropoffDoors:
		return "DropoffDoors"
	default:
		return "Idle"
	}
}

// Target is the floor the car heads for during the phase.
func (p Phase) Target(r Request) Floor {
	switch p {
	case PhaseToPickup, PhasePickupDoors:
		return r.From
	default:
		return r.To
	}
}

// ElevState is an observable snapshot of the controller.
type ElevState struct {
	Floor   Floor
	Dir     Direction
	Door    DoorState
	Status  MovementStatus
	Phase   Phase
	Active  *Request // nil when standing
	Pending []Request
}
