package types

import "fmt"

type EventKind int

const (
	FloorChanged EventKind = iota
	DirectionChanged
	DoorStateChanged
	StatusChanged
	RouteChanged
)

func (k EventKind) String() string {
	switch k {
	case FloorChanged:
		return "FloorChanged"
	case DirectionChanged:
		return "DirectionChanged"
	case DoorStateChanged:
		return "DoorStateChanged"
	case StatusChanged:
		return "StatusChanged"
	case RouteChanged:
		return "RouteChanged"
	}
	return "Unknown"
}

// Event is a state change emitted by the controller. Only the field matching
// Kind is meaningful.
type Event struct {
	Kind   EventKind
	Floor  Floor
	Dir    Direction
	Door   DoorState
	Status MovementStatus
	Route  []Request
}

func (e Event) String() string {
	switch e.Kind {
	case FloorChanged:
		return fmt.Sprintf("floor(%d)", e.Floor)
	case DirectionChanged:
		return fmt.Sprintf("dir(%s)", e.Dir)
	case DoorStateChanged:
		return fmt.Sprintf("door(%s)", e.Door)
	case StatusChanged:
		return fmt.Sprintf("status(%s)", e.Status)
	case RouteChanged:
		return fmt.Sprintf("route(%v)", e.Route)
	}
	return "unknown"
}
