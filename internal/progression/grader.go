package progression

import "progression-service/internal/models"

// GradeQuest scores a response set against a quest's answer key. Each
// response is matched to a question by exact, case-sensitive question
// text; a response whose text matches no question is ignored. The
// experience delta is the full quest reward on a pass and half (floored)
// on a fail: attempting always pays something.
func GradeQuest(quest models.Quest, responses []models.UserResponse) (score int, isPassed bool, expDelta int) {
	answerKey := make(map[string]string, len(quest.Questions))
	for _, q := range quest.Questions {
		answerKey[q.QuestionText] = q.Answer
	}

	for _, r := range responses {
		if answer, ok := answerKey[r.QuestionText]; ok && answer == r.Answer {
			score++
		}
	}

	isPassed = score >= quest.PassingScore
	if isPassed {
		expDelta = quest.Exp
	} else {
		expDelta = quest.Exp / 2
	}
	return score, isPassed, expDelta
}
