package model

// Choice is one answer to a Question with its vote count.
type Choice struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	ChoiceText string `json:"choice_text" gorm:"type:varchar(200);not null"`
	Votes      uint   `json:"votes" gorm:"not null;default:0"`
}
