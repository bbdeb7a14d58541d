package maintenance

import (
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Snapshot is the out-of-service set in effect while requests are validated.
// It is never mutated after Confirm returns it.
type Snapshot struct {
	numFloors    int
	outOfService map[types.Floor]bool
}

// EmptySnapshot has no floors under maintenance.
func EmptySnapshot(numFloors int) Snapshot {
	return Snapshot{numFloors: numFloors}
}

func (s Snapshot) NumFloors() int {
	return s.numFloors
}

func (s Snapshot) Contains(floor types.Floor) bool {
	return s.outOfService[floor]
}

func (s Snapshot) AvailableFloors() []types.Floor {
	return available(s.numFloors, s.outOfService)
}

func (s Snapshot) OutOfService() []types.Floor {
	return sortedKeys(s.outOfService)
}

// Validate checks a (from, to) pair. Duplicates are reported before range and
// maintenance problems, so (f, f) is always a DuplicateFloor.
func (s Snapshot) Validate(from, to types.Floor) error {
	if from == to {
		return &types.ValidationError{Kind: types.DuplicateFloor, Floor: from, From: from, To: to}
	}
	for _, f := range []types.Floor{from, to} {
		if !utils.InRange(f, s.numFloors) {
			return &types.ValidationError{Kind: types.FloorOutOfRange, Floor: f, From: from, To: to}
		}
	}
	for _, f := range []types.Floor{from, to} {
		if s.Contains(f) {
			return &types.ValidationError{Kind: types.FloorUnderMaintenance, Floor: f, From: from, To: to}
		}
	}
	return nil
}
