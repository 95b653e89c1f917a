package service

import (
	"context"
	"fmt"

	"progression-service/internal/models"
	"progression-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// Map-backed stores standing in for the Mongo repositories.

type fakeUserStore struct {
	users  map[string]models.User
	nextID int
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		s.nextID++
		user.ID = fmt.Sprintf("user-%d", s.nextID)
	}
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) Replace(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeStageStore struct {
	stages map[string]models.Stage
}

func newFakeStageStore(stages ...models.Stage) *fakeStageStore {
	s := &fakeStageStore{stages: map[string]models.Stage{}}
	for _, st := range stages {
		s.stages[st.ID] = st
	}
	return s
}

func (s *fakeStageStore) FindByID(_ context.Context, id string) (*models.Stage, error) {
	st, ok := s.stages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := st
	return &cp, nil
}

func (s *fakeStageStore) FindAll(_ context.Context) ([]models.Stage, error) {
	var out []models.Stage
	for _, st := range s.stages {
		out = append(out, st)
	}
	return out, nil
}

func (s *fakeStageStore) FindByZone(_ context.Context, zone string) ([]models.Stage, error) {
	var out []models.Stage
	for _, st := range s.stages {
		if st.Zone == zone {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStageStore) FindByZoneAndNumber(_ context.Context, zone string, stageNumber int) (*models.Stage, error) {
	for _, st := range s.stages {
		if st.Zone == zone && st.StageNumber == stageNumber {
			cp := st
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeStageStore) FindByIDs(_ context.Context, ids []string) ([]models.Stage, error) {
	var out []models.Stage
	for _, id := range ids {
		if st, ok := s.stages[id]; ok {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStageStore) Create(_ context.Context, stage *models.Stage) error {
	if stage.ID == "" {
		stage.ID = fmt.Sprintf("stage-%d", len(s.stages)+1)
	}
	s.stages[stage.ID] = *stage
	return nil
}

func (s *fakeStageStore) Update(_ context.Context, id string, _ bson.M) error {
	if _, ok := s.stages[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (s *fakeStageStore) Delete(_ context.Context, id string) error {
	if _, ok := s.stages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.stages, id)
	return nil
}

type fakeQuestStore struct {
	quests map[string]models.Quest
}

func newFakeQuestStore(quests ...models.Quest) *fakeQuestStore {
	s := &fakeQuestStore{quests: map[string]models.Quest{}}
	for _, q := range quests {
		s.quests[q.ID] = q
	}
	return s
}

func (s *fakeQuestStore) FindByID(_ context.Context, id string) (*models.Quest, error) {
	q, ok := s.quests[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := q
	return &cp, nil
}

func (s *fakeQuestStore) FindAll(_ context.Context) ([]models.Quest, error) {
	var out []models.Quest
	for _, q := range s.quests {
		out = append(out, q)
	}
	return out, nil
}

func (s *fakeQuestStore) Create(_ context.Context, quest *models.Quest) error {
	if quest.ID == "" {
		quest.ID = fmt.Sprintf("quest-%d", len(s.quests)+1)
	}
	s.quests[quest.ID] = *quest
	return nil
}

func (s *fakeQuestStore) Update(_ context.Context, id string, _ bson.M) error {
	if _, ok := s.quests[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (s *fakeQuestStore) Delete(_ context.Context, id string) error {
	if _, ok := s.quests[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.quests, id)
	return nil
}

type fakeBadgeStore struct {
	badges map[string]models.Badge
}

func newFakeBadgeStore(badges ...models.Badge) *fakeBadgeStore {
	s := &fakeBadgeStore{badges: map[string]models.Badge{}}
	for _, b := range badges {
		s.badges[b.ID] = b
	}
	return s
}

func (s *fakeBadgeStore) FindByID(_ context.Context, id string) (*models.Badge, error) {
	b, ok := s.badges[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := b
	return &cp, nil
}

func (s *fakeBadgeStore) FindAll(_ context.Context) ([]models.Badge, error) {
	var out []models.Badge
	for _, b := range s.badges {
		out = append(out, b)
	}
	return out, nil
}

func (s *fakeBadgeStore) Create(_ context.Context, badge *models.Badge) error {
	s.badges[badge.ID] = *badge
	return nil
}

type fakeCharacterStore struct {
	characters map[string]models.Character
}

func newFakeCharacterStore(characters ...models.Character) *fakeCharacterStore {
	s := &fakeCharacterStore{characters: map[string]models.Character{}}
	for _, c := range characters {
		s.characters[c.ID] = c
	}
	return s
}

func (s *fakeCharacterStore) FindByID(_ context.Context, id string) (*models.Character, error) {
	c, ok := s.characters[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (s *fakeCharacterStore) FindAll(_ context.Context) ([]models.Character, error) {
	var out []models.Character
	for _, c := range s.characters {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeCharacterStore) Create(_ context.Context, character *models.Character) error {
	if character.ID == "" {
		character.ID = fmt.Sprintf("character-%d", len(s.characters)+1)
	}
	s.characters[character.ID] = *character
	return nil
}

func (s *fakeCharacterStore) Update(_ context.Context, id string, _ bson.M) error {
	if _, ok := s.characters[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (s *fakeCharacterStore) Delete(_ context.Context, id string) error {
	if _, ok := s.characters[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.characters, id)
	return nil
}

type fakeResultStore struct {
	results []models.Result
}

func (s *fakeResultStore) FindByUser(_ context.Context, userID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) FindByQuest(_ context.Context, questID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range s.results {
		if r.QuestID == questID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = fmt.Sprintf("result-%d", len(s.results)+1)
	}
	s.results = append(s.results, *result)
	return nil
}

// recordingPublisher captures published events in order.
type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ interface{}) error {
	p.events = append(p.events, eventType)
	return nil
}
