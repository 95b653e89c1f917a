package models

import "time"

// Stage is an ordered unit of content within a zone. Stage content is
// immutable once authored; only admins write it.
type Stage struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Zone        string    `bson:"zone" json:"zone"`
	StageNumber int       `bson:"stage_number" json:"stage_number"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Exp         int       `bson:"exp" json:"exp"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
