package models

import "time"

type Question struct {
	QuestionText string `bson:"question_text" json:"question_text"`
	Answer       string `bson:"answer" json:"answer"`
}

// Quest is a gradeable quiz: an ordered question list with an answer key,
// a passing threshold, and an experience reward.
type Quest struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description" json:"description"`
	Questions    []Question `bson:"questions" json:"questions"`
	PassingScore int        `bson:"passing_score" json:"passing_score"`
	Exp          int        `bson:"exp" json:"exp"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}
