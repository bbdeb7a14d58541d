// Package shell composes the maintenance registry and the elevator controller
// behind the commands the presentation layer issues.
package shell

import (
	"context"
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/maintenance"
	"liftsim/src/types"
)

type Shell struct {
	registry   *maintenance.Registry
	controller *elev.Controller
	snapshot   maintenance.Snapshot
	confirmed  bool
}

// New builds the registry and the controller. The controller is started
// immediately and runs until ctx is cancelled or Close is called.
func New(ctx context.Context, cfg config.Config, observer elev.Observer) *Shell {
	s := &Shell{
		registry:   maintenance.NewRegistry(cfg.NumFloors),
		controller: elev.New(cfg, observer),
		snapshot:   maintenance.EmptySnapshot(cfg.NumFloors),
	}
	s.controller.Start(ctx)
	return s
}

func (s *Shell) Close() {
	s.controller.Close()
}

func (s *Shell) Controller() *elev.Controller {
	return s.controller
}

func (s *Shell) NumFloors() int {
	return s.registry.NumFloors()
}

func (s *Shell) ToggleMaintenanceFloor(floor types.Floor) error {
	return s.registry.Toggle(floor)
}

// ConfirmMaintenance hands the current out-of-service set to the controller.
// Requests submitted afterwards are validated against this snapshot.
func (s *Shell) ConfirmMaintenance() (maintenance.Snapshot, error) {
	snapshot := s.registry.Confirm()
	if err := s.controller.SetMaintenance(snapshot); err != nil {
		return snapshot, err
	}
	s.snapshot = snapshot
	s.confirmed = true
	return snapshot, nil
}

func (s *Shell) SubmitRequest(from, to types.Floor) error {
	return s.controller.Enqueue(from, to)
}

// RequestMoreRequests is a navigation signal only; core state is not touched.
func (s *Shell) RequestMoreRequests() {
	slog.Debug("Returning to request entry", "confirmed", s.confirmed)
}

// AvailableFloors lists the floors the request stage may offer. Before
// confirmation this follows the live registry.
func (s *Shell) AvailableFloors() []types.Floor {
	if !s.confirmed {
		return s.registry.AvailableFloors()
	}
	return s.snapshot.AvailableFloors()
}

func (s *Shell) MaintenanceFloors() []types.Floor {
	if !s.confirmed {
		return s.registry.OutOfService()
	}
	return s.snapshot.OutOfService()
}
