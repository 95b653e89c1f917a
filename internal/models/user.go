package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CharacterSnapshot is the character choice embedded on the user at signup.
// It is a copy, not a reference: later edits to the character catalog do not
// rewrite existing users.
type CharacterSnapshot struct {
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar" json:"avatar"`
}

type User struct {
	ID              string            `bson:"_id,omitempty" json:"id"`
	Username        string            `bson:"username" json:"username"`
	Email           string            `bson:"email" json:"email"`
	Password        string            `bson:"password" json:"-"`
	Character       CharacterSnapshot `bson:"character" json:"character"`
	CompletedStages []string          `bson:"completed_stages" json:"completed_stages"`
	Badges          []string          `bson:"badges" json:"badges"`
	Level           int               `bson:"level" json:"level"`
	Experience      int               `bson:"experience" json:"experience"`
	Role            string            `bson:"role" json:"role"`
	CreatedAt       time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

// HasCompletedStage reports whether the stage is already in the user's
// completed set.
func (u *User) HasCompletedStage(stageID string) bool {
	for _, id := range u.CompletedStages {
		if id == stageID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge was already awarded.
func (u *User) HasBadge(badgeID string) bool {
	for _, id := range u.Badges {
		if id == badgeID {
			return true
		}
	}
	return false
}
