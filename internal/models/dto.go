package models

type SignupRequest struct {
	Username    string `json:"username" binding:"required,min=3"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CharacterID string `json:"character_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CompleteStageRequest struct {
	Bonus bool `json:"bonus"`
}

// UserResponse is one submitted answer, keyed by the question text.
type UserResponse struct {
	QuestionText string `json:"question_text" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
}

type SubmitQuestRequest struct {
	UserResponses []UserResponse `json:"user_responses" binding:"required"`
}

type LevelUpInfo struct {
	Flag  bool `json:"flag"`
	Level int  `json:"level"`
}

type EarnBadgeInfo struct {
	Flag  bool   `json:"flag"`
	Badge *Badge `json:"badge,omitempty"`
}

// QuestSummary is the public quest listing shape: the answer key stays
// server-side, and Taken marks quests the user already has a result for.
type QuestSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	PassingScore int    `json:"passing_score"`
	Exp          int    `json:"exp"`
	Taken        bool   `json:"taken"`
}

// QuestDetail is the public single-quest shape: question texts without
// their answers.
type QuestDetail struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Questions    []string `json:"questions"`
	PassingScore int      `json:"passing_score"`
	Exp          int      `json:"exp"`
}
