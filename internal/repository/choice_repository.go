package repository

import (
	"github.com/lshigami/quickpoll/internal/model"
	"gorm.io/gorm"
)

type ChoiceRepository interface {
	Create(choice *model.Choice) error
	FindByQuestionID(questionID uint) ([]model.Choice, error)
	// IncrementVotes adds one vote to the choice if it belongs to the
	// question. The addition is evaluated by the database so concurrent
	// voters never overwrite each other. It reports whether a choice matched.
	IncrementVotes(questionID, choiceID uint) (bool, error)
}

type choiceRepository struct {
	db *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(choice *model.Choice) error {
	return r.db.Create(choice).Error
}

func (r *choiceRepository) FindByQuestionID(questionID uint) ([]model.Choice, error) {
	var choices []model.Choice
	if err := r.db.Where("question_id = ?", questionID).Order("id ASC").Find(&choices).Error; err != nil {
		return nil, err
	}
	return choices, nil
}

func (r *choiceRepository) IncrementVotes(questionID, choiceID uint) (bool, error) {
	res := r.db.Model(&model.Choice{}).
		Where("id = ? AND question_id = ?", choiceID, questionID).
		UpdateColumn("votes", gorm.Expr("votes + ?", 1))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
