package maintenance

import (
	"errors"
	"slices"
	"testing"

	"liftsim/src/types"
)

const testFloors = 7

func TestToggleIsSelfInverse(t *testing.T) {
	r := NewRegistry(testFloors)
	if err := r.Toggle(2); err != nil {
		t.Fatalf("Toggle(2): %v", err)
	}
	for f := types.Floor(1); f <= testFloors; f++ {
		before := r.OutOfService()
		if err := r.Toggle(f); err != nil {
			t.Fatalf("Toggle(%d): %v", f, err)
		}
		if err := r.Toggle(f); err != nil {
			t.Fatalf("Toggle(%d): %v", f, err)
		}
		if after := r.OutOfService(); !slices.Equal(before, after) {
			t.Errorf("floor %d: membership %v changed to %v after two toggles", f, before, after)
		}
	}
}

func TestToggleOutOfRange(t *testing.T) {
	r := NewRegistry(testFloors)
	for _, f := range []types.Floor{0, -1, testFloors + 1} {
		err := r.Toggle(f)
		if !errors.Is(err, types.ErrFloorOutOfRange) {
			t.Errorf("Toggle(%d) = %v, want out of range", f, err)
		}
	}
	if got := r.OutOfService(); len(got) != 0 {
		t.Errorf("OutOfService = %v, want empty", got)
	}
}

func TestAvailableFloors(t *testing.T) {
	r := NewRegistry(testFloors)
	_ = r.Toggle(4)
	_ = r.Toggle(1)

	want := []types.Floor{2, 3, 5, 6, 7}
	first := r.AvailableFloors()
	if !slices.Equal(first, want) {
		t.Errorf("AvailableFloors = %v, want %v", first, want)
	}
	if second := r.AvailableFloors(); !slices.Equal(first, second) {
		t.Errorf("AvailableFloors not idempotent: %v then %v", first, second)
	}
}

func TestConfirmIsolatesSnapshot(t *testing.T) {
	r := NewRegistry(testFloors)
	_ = r.Toggle(4)
	snap := r.Confirm()

	_ = r.Toggle(4)
	_ = r.Toggle(5)

	if !snap.Contains(4) {
		t.Error("snapshot lost floor 4 after registry toggle")
	}
	if snap.Contains(5) {
		t.Error("snapshot picked up floor 5 toggled after confirm")
	}
	if got := snap.OutOfService(); !slices.Equal(got, []types.Floor{4}) {
		t.Errorf("snapshot OutOfService = %v, want [4]", got)
	}
}

func TestSnapshotValidate(t *testing.T) {
	r := NewRegistry(testFloors)
	_ = r.Toggle(4)
	snap := r.Confirm()

	tests := []struct {
		name     string
		from, to types.Floor
		want     error
	}{
		{"valid", 1, 7, nil},
		{"same floor", 1, 1, types.ErrDuplicateFloor},
		{"same maintenance floor", 4, 4, types.ErrDuplicateFloor},
		{"same out of range floor", 9, 9, types.ErrDuplicateFloor},
		{"from under maintenance", 4, 7, types.ErrFloorUnderMaintenance},
		{"to under maintenance", 2, 4, types.ErrFloorUnderMaintenance},
		{"from below range", 0, 3, types.ErrFloorOutOfRange},
		{"to above range", 3, 8, types.ErrFloorOutOfRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := snap.Validate(tc.from, tc.to)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate(%d, %d) = %v, want nil", tc.from, tc.to, err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate(%d, %d) = %v, want %v", tc.from, tc.to, err, tc.want)
			}
			var verr *types.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a *ValidationError", err)
			}
		})
	}
}

func TestDuplicateForEveryFloor(t *testing.T) {
	snap := EmptySnapshot(testFloors)
	for f := types.Floor(1); f <= testFloors; f++ {
		if err := snap.Validate(f, f); !errors.Is(err, types.ErrDuplicateFloor) {
			t.Errorf("Validate(%d, %d) = %v, want duplicate floor", f, f, err)
		}
	}
}

func TestEmptySnapshotAllowsAllFloors(t *testing.T) {
	snap := EmptySnapshot(testFloors)
	if got := snap.AvailableFloors(); len(got) != testFloors {
		t.Errorf("AvailableFloors = %v, want all %d floors", got, testFloors)
	}
	if snap.Contains(3) {
		t.Error("empty snapshot contains floor 3")
	}
}
