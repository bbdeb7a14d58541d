// Package maintenance tracks floors that are out of service and validates floor selections against them.
package maintenance

import (
	"log/slog"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/types"
	"liftsim/src/utils"
)

// Registry holds the out-of-service set while floors are being selected.
type Registry struct {
	numFloors    int
	outOfService map[types.Floor]bool
}

func NewRegistry(numFloors int) *Registry {
	return &Registry{
		numFloors:    numFloors,
		outOfService: make(map[types.Floor]bool),
	}
}

// Toggle flips the maintenance flag of floor. Calling it twice restores the original membership.
func (r *Registry) Toggle(floor types.Floor) error {
	if !utils.InRange(floor, r.numFloors) {
		return &types.ValidationError{Kind: types.FloorOutOfRange, Floor: floor}
	}
	if r.outOfService[floor] {
		delete(r.outOfService, floor)
	} else {
		r.outOfService[floor] = true
	}
	slog.Debug("Maintenance toggled", "floor", floor, "outOfService", r.outOfService[floor])
	return nil
}

func (r *Registry) AvailableFloors() []types.Floor {
	return available(r.numFloors, r.outOfService)
}

func (r *Registry) OutOfService() []types.Floor {
	return sortedKeys(r.outOfService)
}

func (r *Registry) NumFloors() int {
	return r.numFloors
}

// Confirm hands out an immutable copy of the current out-of-service set.
func (r *Registry) Confirm() Snapshot {
	set := make(map[types.Floor]bool, len(r.outOfService))
	if err := deepcopy.Copy(&set, r.outOfService); err != nil {
		panic(err)
	}
	slog.Info("Maintenance confirmed", "floors", sortedKeys(set))
	return Snapshot{numFloors: r.numFloors, outOfService: set}
}

func available(numFloors int, outOfService map[types.Floor]bool) []types.Floor {
	floors := make([]types.Floor, 0, numFloors)
	utils.ForEachFloor(numFloors, func(floor types.Floor) {
		if !outOfService[floor] {
			floors = append(floors, floor)
		}
	})
	return floors
}

func sortedKeys(set map[types.Floor]bool) []types.Floor {
	floors := make([]types.Floor, 0, len(set))
	for f := range set {
		floors = append(floors, f)
	}
	slices.Sort(floors)
	return floors
}
