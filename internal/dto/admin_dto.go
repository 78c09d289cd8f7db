package dto

import "time"

// ChoiceCreateDTO is used within QuestionCreateDTO and on its own when an
// admin adds a choice to an existing question.
type ChoiceCreateDTO struct {
	ChoiceText string `json:"choice_text" binding:"required,max=200"`
}

// QuestionCreateDTO is for admin to create a question, optionally with its
// initial choices. PubDate defaults to the current time.
type QuestionCreateDTO struct {
	QuestionText string            `json:"question_text" binding:"required,max=200"`
	PubDate      *time.Time        `json:"pub_date"`
	Choices      []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

// AdminQuestionResponse shows a question regardless of publication state.
type AdminQuestionResponse struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	PubDate      time.Time      `json:"pub_date"`
	Published    bool           `json:"published"`
	Choices      []ChoiceResult `json:"choices"`
	CreatedAt    time.Time      `json:"created_at"`
}
