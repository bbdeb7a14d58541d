package types

import (
	"errors"
	"fmt"
)

type ValidationKind int

const (
	DuplicateFloor ValidationKind = iota
	FloorUnderMaintenance
	FloorOutOfRange
)

func (k ValidationKind) String() string {
	switch k {
	case DuplicateFloor:
		return "duplicate floor"
	case FloorUnderMaintenance:
		return "floor under maintenance"
	case FloorOutOfRange:
		return "floor out of range"
	}
	return "invalid floor"
}

var (
	ErrDuplicateFloor        = errors.New("from and to floors cannot be the same")
	ErrFloorUnderMaintenance = errors.New("floor is under maintenance")
	ErrFloorOutOfRange       = errors.New("floor is out of range")
)

// ValidationError rejects a floor selection. Core state is left unchanged.
type ValidationError struct {
	Kind  ValidationKind
	Floor Floor // offending floor
	From  Floor
	To    Floor
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case DuplicateFloor:
		return fmt.Sprintf("request %d->%d: %v", e.From, e.To, ErrDuplicateFloor)
	case FloorUnderMaintenance:
		return fmt.Sprintf("floor %d: %v", e.Floor, ErrFloorUnderMaintenance)
	default:
		return fmt.Sprintf("floor %d: %v", e.Floor, ErrFloorOutOfRange)
	}
}

func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrDuplicateFloor:
		return e.Kind == DuplicateFloor
	case ErrFloorUnderMaintenance:
		return e.Kind == FloorUnderMaintenance
	case ErrFloorOutOfRange:
		return e.Kind == FloorOutOfRange
	}
	return false
}
