package progression

import (
	"sort"

	"progression-service/internal/models"
)

const (
	StatusAvailable = "available"
	StatusLocked    = "locked"
	StatusCompleted = "completed"
)

// statusRank orders statuses for listing: playable stages first, then
// locked, then finished ones.
var statusRank = map[string]int{
	StatusAvailable: 0,
	StatusLocked:    1,
	StatusCompleted: 2,
}

// ClassifiedStage pairs a stage with its status for one user.
type ClassifiedStage struct {
	Stage  models.Stage `json:"stage"`
	Status string       `json:"status"`
}

// ClassifyStages computes a status per stage of a zone. A stage is
// completed when its id is in completedIDs; otherwise it is available when
// it is stage 1 or its number is at most highestCompleted+1, where
// highestCompleted is the highest stage number the user has completed in
// any zone (0 when nothing is completed yet). The rest are locked.
//
// Output is sorted available, locked, completed; ties keep stage-number
// order.
func ClassifyStages(stages []models.Stage, completedIDs map[string]struct{}, highestCompleted int) []ClassifiedStage {
	out := make([]ClassifiedStage, 0, len(stages))
	for _, s := range stages {
		status := StatusLocked
		if _, done := completedIDs[s.ID]; done {
			status = StatusCompleted
		} else if s.StageNumber == 1 || s.StageNumber <= highestCompleted+1 {
			status = StatusAvailable
		}
		out = append(out, ClassifiedStage{Stage: s, Status: status})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := statusRank[out[i].Status], statusRank[out[j].Status]
		if ri != rj {
			return ri < rj
		}
		return out[i].Stage.StageNumber < out[j].Stage.StageNumber
	})
	return out
}

// HighestStageNumber returns the largest stage number in the given stages,
// or 0 for an empty slice.
func HighestStageNumber(stages []models.Stage) int {
	highest := 0
	for _, s := range stages {
		if s.StageNumber > highest {
			highest = s.StageNumber
		}
	}
	return highest
}
