package state

// TagKind enumerates facts about the focused date shown as chips under the grid.
type TagKind int

const (
	// Stable ordering for display: Today, Selected, Weekend, Unavailable, At Min, At Max, ISO Week, Day of Year
	TODAY TagKind = iota
	SELECTED
	WEEKEND
	UNAVAILABLE
	AT_MIN
	AT_MAX
	ISO_WEEK
	DAY_OF_YEAR
)

// Tag represents a single status chip. Value carries the number for ISO_WEEK
// and DAY_OF_YEAR; other kinds use 0.
type Tag struct {
	Kind  TagKind
	Value int
}
