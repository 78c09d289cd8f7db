package dto

import "time"

// ChoiceResponse is a selectable choice on the detail view.
type ChoiceResponse struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
}

// ChoiceResult is a choice together with its current vote count.
type ChoiceResult struct {
	ID         uint   `json:"id"`
	ChoiceText string `json:"choice_text"`
	Votes      uint   `json:"votes"`
}

// QuestionSummary is one entry of the index listing.
type QuestionSummary struct {
	ID                uint      `json:"id"`
	QuestionText      string    `json:"question_text"`
	PubDate           time.Time `json:"pub_date"`
	PublishedRecently bool      `json:"published_recently"`
}

// QuestionDetail is a published question with the choices a user can vote for.
type QuestionDetail struct {
	ID                uint             `json:"id"`
	QuestionText      string           `json:"question_text"`
	PubDate           time.Time        `json:"pub_date"`
	PublishedRecently bool             `json:"published_recently"`
	Choices           []ChoiceResponse `json:"choices"`
}

// QuestionResults is a published question with aggregated votes.
type QuestionResults struct {
	ID           uint           `json:"id"`
	QuestionText string         `json:"question_text"`
	PubDate      time.Time      `json:"pub_date"`
	TotalVotes   uint           `json:"total_votes"`
	Choices      []ChoiceResult `json:"choices"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
