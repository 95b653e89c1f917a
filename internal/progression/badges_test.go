package progression

import "testing"

func TestBadgeForStage(t *testing.T) {
	milestones := []int{1, 7, 9, 14, 15}
	seen := map[string]int{}
	for _, n := range milestones {
		id, ok := BadgeForStage(n)
		if !ok {
			t.Errorf("stage %d should award a badge", n)
			continue
		}
		if id == "" {
			t.Errorf("stage %d awarded an empty badge id", n)
		}
		if prev, dup := seen[id]; dup {
			t.Errorf("stages %d and %d share badge id %s", prev, n, id)
		}
		seen[id] = n
	}

	for _, n := range []int{0, 2, 8, 13, 16, 100} {
		if id, ok := BadgeForStage(n); ok {
			t.Errorf("stage %d should award nothing, got %s", n, id)
		}
	}
}
