package utils

import (
	"fmt"
	"strings"

	"liftsim/src/types"
)

// ForEachFloor is a helper function that calls action for floors 1..numFloors in ascending order.
func ForEachFloor(numFloors int, action func(floor types.Floor)) {
	for f := 1; f <= numFloors; f++ {
		action(types.Floor(f))
	}
}

// InRange reports whether floor lies in [1, numFloors].
func InRange(floor types.Floor, numFloors int) bool {
	return floor >= 1 && int(floor) <= numFloors
}

// FormatRoute renders the pending queue the way the route label shows it.
func FormatRoute(route []types.Request) string {
	parts := make([]string, len(route))
	for i, r := range route {
		parts[i] = fmt.Sprintf("'%s'", r)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
