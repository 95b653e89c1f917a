package progression

import "testing"

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		experience int
		expected   int
	}{
		{0, 1},
		{50, 1},
		{51, 2},
		{150, 2},
		{151, 3},
		{450, 5},
		{1050, 11},
		{1850, 19},
		{1851, 20},
		{100000, 20},
		{-10, 1},
	}

	for _, tc := range testCases {
		if got := LevelFor(tc.experience); got != tc.expected {
			t.Errorf("LevelFor(%d) = %d, expected %d", tc.experience, got, tc.expected)
		}
	}
}

func TestLevelForIsMonotonic(t *testing.T) {
	prev := LevelFor(0)
	for exp := 1; exp <= 2500; exp++ {
		lvl := LevelFor(exp)
		if lvl < prev {
			t.Fatalf("level dropped from %d to %d at experience %d", prev, lvl, exp)
		}
		if lvl < 1 || lvl > MaxLevel {
			t.Fatalf("LevelFor(%d) = %d, out of range [1, %d]", exp, lvl, MaxLevel)
		}
		prev = lvl
	}
}
