// State types are defined in elev package to make method receivers possible in elev_state.go.
package elev

import (
	"context"
	"errors"
	"sync/atomic"

	"liftsim/src/config"
	"liftsim/src/maintenance"
	"liftsim/src/timer"
	"liftsim/src/types"
)

var ErrNotRunning = errors.New("elevator controller is not running")

// elevCmd is an operation executed on the owner goroutine.
type elevCmd struct {
	Exec func(c *Controller)
}

// Controller owns the car state and serializes all access to it. Only the
// owner goroutine started by Start reads or writes the fields below cmds.
type Controller struct {
	cfg      config.Config
	observer Observer
	cmds     chan elevCmd
	started  atomic.Bool
	running  atomic.Bool
	cancel   context.CancelFunc
	done     chan struct{}

	state       types.ElevState
	maintenance maintenance.Snapshot
	phaseTimer  *timer.Timer
}

func New(cfg config.Config, observer Observer) *Controller {
	if observer == nil {
		observer = Observers{}
	}
	return &Controller{
		cfg:      cfg,
		observer: observer,
		cmds:     make(chan elevCmd),
		done:     make(chan struct{}),
		state: types.ElevState{
			Floor:  config.GroundFloor,
			Dir:    types.Idle,
			Door:   types.Closed,
			Status: types.Standing,
			Phase:  types.PhaseIdle,
		},
		maintenance: maintenance.EmptySnapshot(cfg.NumFloors),
		phaseTimer:  timer.New(),
	}
}
