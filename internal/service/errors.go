package service

import "errors"

// ChoiceNotSelectedMessage is shown when a vote names no valid choice.
const ChoiceNotSelectedMessage = "You didn't select a choice."

var (
	// ErrQuestionNotFound covers both missing and not yet published questions.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrChoiceNotSelected means the vote had no choice id or one that does
	// not belong to the question.
	ErrChoiceNotSelected = errors.New(ChoiceNotSelectedMessage)
	// ErrInvalidQuestion rejects admin input that cannot form a question.
	ErrInvalidQuestion = errors.New("invalid question")
)
