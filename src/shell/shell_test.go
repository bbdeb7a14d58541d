package shell

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"testing"
	"time"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/types"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newShell(t *testing.T) (*Shell, *elev.ChanObserver) {
	t.Helper()
	cfg := config.Default()
	cfg.StepDuration = time.Millisecond
	cfg.DoorOpeningDuration = time.Millisecond
	cfg.DoorOpenDuration = time.Millisecond
	cfg.DoorClosingDuration = time.Millisecond
	obs := elev.NewChanObserver(cfg.EventBuffer)
	s := New(context.Background(), cfg, obs)
	t.Cleanup(s.Close)
	return s, obs
}

func TestMaintenanceThenRequest(t *testing.T) {
	s, obs := newShell(t)

	if err := s.ToggleMaintenanceFloor(4); err != nil {
		t.Fatalf("ToggleMaintenanceFloor(4): %v", err)
	}
	if err := s.ToggleMaintenanceFloor(9); !errors.Is(err, types.ErrFloorOutOfRange) {
		t.Errorf("ToggleMaintenanceFloor(9) = %v, want out of range", err)
	}
	snap, err := s.ConfirmMaintenance()
	if err != nil {
		t.Fatalf("ConfirmMaintenance: %v", err)
	}
	if !snap.Contains(4) {
		t.Error("snapshot missing floor 4")
	}
	if got := s.AvailableFloors(); !slices.Equal(got, []types.Floor{1, 2, 3, 5, 6, 7}) {
		t.Errorf("AvailableFloors = %v", got)
	}

	if err := s.SubmitRequest(4, 7); !errors.Is(err, types.ErrFloorUnderMaintenance) {
		t.Errorf("SubmitRequest(4, 7) = %v, want floor under maintenance", err)
	}

	// Toggling again after confirm changes the live registry only.
	_ = s.ToggleMaintenanceFloor(4)
	if got := s.MaintenanceFloors(); !slices.Equal(got, []types.Floor{4}) {
		t.Errorf("MaintenanceFloors = %v, want [4]", got)
	}

	s.RequestMoreRequests()
	if err := s.SubmitRequest(2, 3); err != nil {
		t.Fatalf("SubmitRequest(2, 3): %v", err)
	}
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-obs.Events:
			if ev.Kind == types.StatusChanged && ev.Status == types.Standing {
				return
			}
		case <-timeout:
			t.Fatal("request never completed")
		}
	}
}

func TestNumFloors(t *testing.T) {
	s, _ := newShell(t)
	if got := s.NumFloors(); got != config.NumFloors {
		t.Errorf("NumFloors = %d, want %d", got, config.NumFloors)
	}
}

func TestSubmitWithoutConfirm(t *testing.T) {
	s, _ := newShell(t)
	_ = s.ToggleMaintenanceFloor(5)

	if got := s.AvailableFloors(); slices.Contains(got, 5) {
		t.Errorf("AvailableFloors = %v contains floor 5 before confirm", got)
	}
	// Nothing confirmed yet, so the controller validates against an empty set.
	if err := s.SubmitRequest(5, 6); err != nil {
		t.Errorf("SubmitRequest(5, 6) before confirm = %v", err)
	}
	if err := s.SubmitRequest(3, 3); !errors.Is(err, types.ErrDuplicateFloor) {
		t.Errorf("SubmitRequest(3, 3) = %v, want duplicate floor", err)
	}
}
