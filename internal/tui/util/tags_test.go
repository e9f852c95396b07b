package util

import (
	"testing"
	"time"

	"calpick/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
	for i, t := range tags {
		if t.Kind == k {
			return i, true
		}
	}
	return -1, false
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTodaySelectedWeekend(t *testing.T) {
	s, err := state.New(date(2017, 9, 16), state.DateRange{})
	if err != nil {
		t.Fatal(err)
	}
	tags := ComputeTags(s, date(2017, 9, 16))
	for _, k := range []state.TagKind{state.TODAY, state.SELECTED, state.WEEKEND, state.DAY_OF_YEAR} {
		if _, ok := findKind(tags, k); !ok {
			t.Fatalf("missing tag %d in %v", k, tags)
		}
	}
	if _, ok := findKind(tags, state.UNAVAILABLE); ok {
		t.Fatalf("unexpected UNAVAILABLE")
	}
	if _, ok := findKind(tags, state.ISO_WEEK); ok {
		t.Fatalf("ISO_WEEK without ISO column")
	}
}

func TestBoundsAndOrder(t *testing.T) {
	lo := date(2017, 9, 15)
	s, err := state.New(lo, state.DateRange{Earliest: &lo, Latest: &lo})
	if err != nil {
		t.Fatal(err)
	}
	s.ISOWeeks = true
	tags := ComputeTags(s, time.Time{})
	minIdx, okMin := findKind(tags, state.AT_MIN)
	maxIdx, okMax := findKind(tags, state.AT_MAX)
	isoIdx, okISO := findKind(tags, state.ISO_WEEK)
	if !okMin || !okMax || !okISO {
		t.Fatalf("missing bound or iso tags: %v", tags)
	}
	if !(minIdx < maxIdx && maxIdx < isoIdx) {
		t.Fatalf("unstable order: %v", tags)
	}
	if tags[isoIdx].Value != 37 {
		t.Fatalf("iso week %d", tags[isoIdx].Value)
	}
	if last := tags[len(tags)-1]; last.Kind != state.DAY_OF_YEAR || last.Value != 258 {
		t.Fatalf("day of year %+v", last)
	}
	if _, ok := findKind(tags, state.TODAY); ok {
		t.Fatalf("zero today matched")
	}
}
