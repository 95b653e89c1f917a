package progression

// FounderBadgeID is awarded to the platform's first ordinary-role user at
// signup. The id references a seeded badge document.
const FounderBadgeID = "65335d072eee7695841b9aef"

// stageBadges maps milestone stage numbers to the badge awarded on
// completing that stage. Stage numbers without an entry award nothing.
var stageBadges = map[int]string{
	1:  "65335d072eee7695841b9af0",
	7:  "65335d072eee7695841b9af1",
	9:  "65335d072eee7695841b9af2",
	14: "65335d072eee7695841b9af3",
	15: "65335d072eee7695841b9af4",
}

// BadgeForStage returns the badge id earned by completing the given stage
// number, if the number is a milestone.
func BadgeForStage(stageNumber int) (string, bool) {
	id, ok := stageBadges[stageNumber]
	return id, ok
}
