package progression

// levelBands lists the inclusive upper bound of each level's experience
// band in ascending order. The first band is half-width (0-50); every
// later band is 100 wide. Experience past the last bound is the open
// top band. Adding a level is a data change here, not a code change.
var levelBands = []int{
	50,   // level 1
	150,  // level 2
	250,  // level 3
	350,  // level 4
	450,  // level 5
	550,  // level 6
	650,  // level 7
	750,  // level 8
	850,  // level 9
	950,  // level 10
	1050, // level 11
	1150, // level 12
	1250, // level 13
	1350, // level 14
	1450, // level 15
	1550, // level 16
	1650, // level 17
	1750, // level 18
	1850, // level 19
}

// MaxLevel is the level of the open top band.
var MaxLevel = len(levelBands) + 1

// LevelFor maps cumulative experience to a level in [1, MaxLevel]. Negative
// input is clamped to the first band.
func LevelFor(experience int) int {
	for i, upper := range levelBands {
		if experience <= upper {
			return i + 1
		}
	}
	return MaxLevel
}
