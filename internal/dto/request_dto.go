package dto

// VoteRequest is the JSON body of a vote. A missing choice_id is reported to
// the user the same way as an unknown one.
type VoteRequest struct {
	ChoiceID *uint `json:"choice_id"`
}
