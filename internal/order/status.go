package order

import "github.com/restu-food/api/internal/enum"

// stages is the fulfillment timeline in display order. Status only ever
// moves forward through this list.
var stages = []string{
	enum.OrderStatusPreparing,
	enum.OrderStatusReady,
	enum.OrderStatusOnTheWay,
	enum.OrderStatusDelivered,
}

// Stages returns the ordered stage list for timeline rendering.
func Stages() []string {
	out := make([]string, len(stages))
	copy(out, stages)
	return out
}

// CurrentIndex returns the position of status in the stage list, or -1 for
// a value outside the enumeration.
func CurrentIndex(status string) int {
	for i, s := range stages {
		if s == status {
			return i
		}
	}
	return -1
}

// IsValidStatus reports whether status is one of the four stages.
func IsValidStatus(status string) bool {
	return CurrentIndex(status) >= 0
}

// Progress is the fill fraction for the timeline progress bar:
// min(1, (index+0.5)/(stages-1)). The bar reaches full width only on the
// final stage.
func Progress(status string) float64 {
	idx := CurrentIndex(status)
	if idx < 0 {
		return 0
	}
	p := (float64(idx) + 0.5) / float64(len(stages)-1)
	if p > 1 {
		return 1
	}
	return p
}

// CanTransition reports whether moving from one status to another follows
// the monotonic flow. Skipping stages forward is allowed; moving backward
// or restating the current stage is not.
func CanTransition(from, to string) bool {
	fi, ti := CurrentIndex(from), CurrentIndex(to)
	return fi >= 0 && ti >= 0 && ti > fi
}
