package elev

import (
	"time"

	"liftsim/src/config"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Cost simulates the rest of the active request and the whole queue on a copy
// of the state and returns the time until the car is standing again.
// A door cycle that is already running is counted in full.
func Cost(cfg config.Config, elevator types.ElevState) time.Duration {
	simElev := copyState(elevator)

	var cost time.Duration
	if simElev.Active != nil {
		req := *simElev.Active
		switch simElev.Phase {
		case types.PhaseToPickup:
			cost += travelTime(cfg, simElev.Floor, req.From) + cfg.DoorCycle()
			cost += travelTime(cfg, req.From, req.To) + cfg.DoorCycle()
		case types.PhasePickupDoors:
			cost += cfg.DoorCycle() + travelTime(cfg, req.From, req.To) + cfg.DoorCycle()
		case types.PhaseToDropoff:
			cost += travelTime(cfg, simElev.Floor, req.To) + cfg.DoorCycle()
		case types.PhaseDropoffDoors:
			cost += cfg.DoorCycle()
		}
		simElev.Floor = req.To
	}

	for _, req := range simElev.Pending {
		cost += travelTime(cfg, simElev.Floor, req.From) + cfg.DoorCycle()
		cost += travelTime(cfg, req.From, req.To) + cfg.DoorCycle()
		simElev.Floor = req.To
	}
	return cost
}

// travelTime is one step period per floor; the period after the last step is
// spent settling before the door opens.
func travelTime(cfg config.Config, from, to types.Floor) time.Duration {
	return time.Duration(utils.Abs(int(to-from))) * cfg.StepDuration
}
