package legend

import (
	"strings"
	"testing"
	"time"

	"calpick/internal/tui/state"
)

func TestRenderTagsIntegration(t *testing.T) {
	day := time.Date(2017, 9, 16, 0, 0, 0, 0, time.UTC)
	s, err := state.New(day, state.DateRange{Latest: &day})
	if err != nil {
		t.Fatal(err)
	}
	out := RenderTags(s, day, true) // noColor

	wants := []string{"[Today]", "[Selected]", "[Weekend]", "[Latest]", "[Day 259]"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
	if strings.Contains(out, "[Unavailable]") {
		t.Fatalf("bound date reported unavailable: %s", out)
	}
}
