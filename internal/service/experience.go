package service

import (
	"progression-service/internal/models"
	"progression-service/internal/progression"
)

// grantExperience adds delta to the user's experience and recomputes the
// level, keeping the level == LevelFor(experience) invariant. Reports
// whether the level rose.
func grantExperience(user *models.User, delta int) bool {
	before := user.Level
	user.Experience += delta
	user.Level = progression.LevelFor(user.Experience)
	return user.Level > before
}
