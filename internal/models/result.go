package models

import "time"

// Result records one quest attempt. Results are written once and never
// mutated; a user may hold any number of results per quest.
type Result struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	QuestID   string    `bson:"quest_id" json:"quest_id"`
	Score     int       `bson:"score" json:"score"`
	IsPassed  bool      `bson:"is_passed" json:"is_passed"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
