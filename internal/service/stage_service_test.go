package service

import (
	"context"
	"errors"
	"testing"

	"progression-service/internal/event"
	"progression-service/internal/models"
	"progression-service/internal/progression"
	"progression-service/internal/repository"
)

func forestStages() []models.Stage {
	return []models.Stage{
		{ID: "stage-1", Zone: "forest", StageNumber: 1, Exp: 60},
		{ID: "stage-2", Zone: "forest", StageNumber: 2, Exp: 40},
		{ID: "stage-3", Zone: "forest", StageNumber: 3, Exp: 40},
	}
}

func newStageService(users *fakeUserStore, stages *fakeStageStore, badges *fakeBadgeStore, events EventPublisher) *StageService {
	if badges == nil {
		badges = newFakeBadgeStore()
	}
	return NewStageService(users, stages, badges, nil, events)
}

func TestCompleteStageGrantsExpAndLevelsUp(t *testing.T) {
	users := newFakeUserStore(models.User{ID: "u1", Level: 1, Experience: 0, Role: models.RoleUser})
	stages := newFakeStageStore(forestStages()...)
	pub := &recordingPublisher{}
	svc := newStageService(users, stages, nil, pub)

	user, outcome, err := svc.CompleteStage(context.Background(), "u1", "stage-1", false)
	if err != nil {
		t.Fatalf("CompleteStage: %v", err)
	}
	if user.Experience != 60 {
		t.Errorf("experience = %d, expected 60", user.Experience)
	}
	if user.Level != 2 {
		t.Errorf("level = %d, expected 2", user.Level)
	}
	if !outcome.LevelUp {
		t.Error("expected levelUp flag")
	}
	if !user.HasCompletedStage("stage-1") {
		t.Error("stage-1 missing from completed set")
	}
	if outcome.NextStage == nil || outcome.NextStage.ID != "stage-2" {
		t.Errorf("nextStage = %+v, expected stage-2", outcome.NextStage)
	}

	// The persisted snapshot must match the returned one.
	stored, _ := users.FindByID(context.Background(), "u1")
	if stored.Experience != 60 || stored.Level != 2 {
		t.Errorf("stored user exp=%d level=%d, expected 60/2", stored.Experience, stored.Level)
	}

	// Stage number 1 is a badge milestone, so the award event follows the
	// level-up.
	wantEvents := []string{event.StageCompleted, event.UserLevelUp, event.BadgeEarned}
	if len(pub.events) != len(wantEvents) {
		t.Fatalf("published %v, expected %v", pub.events, wantEvents)
	}
	for i := range wantEvents {
		if pub.events[i] != wantEvents[i] {
			t.Errorf("event %d = %s, expected %s", i, pub.events[i], wantEvents[i])
		}
	}
}

func TestCompleteStageBonusDoublesExp(t *testing.T) {
	users := newFakeUserStore(models.User{ID: "u1", Level: 1})
	stages := newFakeStageStore(forestStages()...)
	svc := newStageService(users, stages, nil, nil)

	user, _, err := svc.CompleteStage(context.Background(), "u1", "stage-2", true)
	if err != nil {
		t.Fatalf("CompleteStage: %v", err)
	}
	if user.Experience != 80 {
		t.Errorf("experience = %d, expected 80 (bonus double)", user.Experience)
	}
}

func TestCompleteStageIsIdempotent(t *testing.T) {
	users := newFakeUserStore(models.User{ID: "u1", Level: 1})
	stages := newFakeStageStore(forestStages()...)
	svc := newStageService(users, stages, nil, nil)

	first, _, err := svc.CompleteStage(context.Background(), "u1", "stage-1", false)
	if err != nil {
		t.Fatalf("first CompleteStage: %v", err)
	}

	_, _, err = svc.CompleteStage(context.Background(), "u1", "stage-1", false)
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("second CompleteStage error = %v, expected ErrAlreadyCompleted", err)
	}

	stored, _ := users.FindByID(context.Background(), "u1")
	if stored.Experience != first.Experience {
		t.Errorf("experience changed on repeated completion: %d vs %d", stored.Experience, first.Experience)
	}
	if len(stored.CompletedStages) != 1 {
		t.Errorf("completed set has %d entries, expected 1", len(stored.CompletedStages))
	}
	if len(stored.Badges) != len(first.Badges) {
		t.Errorf("badges changed on repeated completion")
	}
}

func TestCompleteStageNotFound(t *testing.T) {
	users := newFakeUserStore(models.User{ID: "u1", Level: 1})
	svc := newStageService(users, newFakeStageStore(), nil, nil)

	_, _, err := svc.CompleteStage(context.Background(), "u1", "missing", false)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error = %v, expected ErrNotFound", err)
	}

	_, _, err = svc.CompleteStage(context.Background(), "ghost", "missing", false)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("error for missing user = %v, expected ErrNotFound", err)
	}
}

func TestCompleteStageAwardsMilestoneBadge(t *testing.T) {
	badgeID, ok := progression.BadgeForStage(7)
	if !ok {
		t.Fatal("stage 7 should be a milestone")
	}
	users := newFakeUserStore(models.User{ID: "u1", Level: 1})
	stages := newFakeStageStore(
		models.Stage{ID: "stage-7", Zone: "forest", StageNumber: 7, Exp: 10},
		models.Stage{ID: "stage-8", Zone: "forest", StageNumber: 8, Exp: 10},
	)
	badges := newFakeBadgeStore(models.Badge{ID: badgeID, Name: "Lucky Seven"})
	pub := &recordingPublisher{}
	svc := newStageService(users, stages, badges, pub)

	user, outcome, err := svc.CompleteStage(context.Background(), "u1", "stage-7", false)
	if err != nil {
		t.Fatalf("CompleteStage: %v", err)
	}
	if outcome.EarnedBadge == nil || outcome.EarnedBadge.ID != badgeID {
		t.Fatalf("earnedBadge = %+v, expected %s", outcome.EarnedBadge, badgeID)
	}
	if outcome.EarnedBadge.Name != "Lucky Seven" {
		t.Errorf("badge metadata not resolved: %+v", outcome.EarnedBadge)
	}
	if !user.HasBadge(badgeID) {
		t.Error("badge id missing from user")
	}

	// A non-milestone stage leaves badges untouched.
	user, outcome, err = svc.CompleteStage(context.Background(), "u1", "stage-8", false)
	if err != nil {
		t.Fatalf("CompleteStage stage-8: %v", err)
	}
	if outcome.EarnedBadge != nil {
		t.Errorf("stage 8 should award nothing, got %+v", outcome.EarnedBadge)
	}
	if len(user.Badges) != 1 {
		t.Errorf("badges = %v, expected exactly one", user.Badges)
	}

	found := false
	for _, e := range pub.events {
		if e == event.BadgeEarned {
			found = true
		}
	}
	if !found {
		t.Error("badge.earned event not published")
	}
}

func TestCompleteStageLastStageHasNoNext(t *testing.T) {
	users := newFakeUserStore(models.User{ID: "u1", Level: 1})
	stages := newFakeStageStore(forestStages()...)
	svc := newStageService(users, stages, nil, nil)

	_, outcome, err := svc.CompleteStage(context.Background(), "u1", "stage-3", false)
	if err != nil {
		t.Fatalf("CompleteStage: %v", err)
	}
	if outcome.NextStage != nil {
		t.Errorf("nextStage = %+v, expected none", outcome.NextStage)
	}
}

func TestListZoneForUserCrossZoneUnlock(t *testing.T) {
	// Completing stage 2 in the desert unlocks up to stage 3 in the forest.
	desert := models.Stage{ID: "d-2", Zone: "desert", StageNumber: 2, Exp: 10}
	users := newFakeUserStore(models.User{
		ID:              "u1",
		Level:           1,
		CompletedStages: []string{"d-2"},
	})
	stages := newFakeStageStore(append(forestStages(), desert)...)
	svc := newStageService(users, stages, nil, nil)

	out, err := svc.ListZoneForUser(context.Background(), "forest", "u1")
	if err != nil {
		t.Fatalf("ListZoneForUser: %v", err)
	}

	statuses := map[int]string{}
	for _, cs := range out {
		statuses[cs.Stage.StageNumber] = cs.Status
	}
	if statuses[1] != progression.StatusAvailable || statuses[2] != progression.StatusAvailable || statuses[3] != progression.StatusAvailable {
		t.Errorf("stages 1-3 should be available, got %v", statuses)
	}
}
