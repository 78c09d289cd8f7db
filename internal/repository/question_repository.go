package repository

import (
	"time"

	"github.com/lshigami/quickpoll/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	// FindLatestPublished returns up to limit questions published at or
	// before now that own at least one choice, newest first.
	FindLatestPublished(now time.Time, limit int) ([]model.Question, error)
	// FindPublishedByID returns the question with its choices only if it is
	// published at now; otherwise gorm.ErrRecordNotFound.
	FindPublishedByID(id uint, now time.Time) (*model.Question, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func orderChoices(db *gorm.DB) *gorm.DB {
	return db.Order("choices.id ASC")
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.Preload("Choices", orderChoices).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Preload("Choices", orderChoices).Order("pub_date DESC").Order("id DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindLatestPublished(now time.Time, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("questions.pub_date <= ?", now.UTC()).
		Where("EXISTS (SELECT 1 FROM choices WHERE choices.question_id = questions.id)").
		Order("questions.pub_date DESC").
		Order("questions.id DESC").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindPublishedByID(id uint, now time.Time) (*model.Question, error) {
	var question model.Question
	err := r.db.Preload("Choices", orderChoices).
		Where("questions.pub_date <= ?", now.UTC()).
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// Delete removes a question and its choices. Choices are deleted explicitly
// so drivers without enforced foreign keys still cascade.
func (r *questionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.Choice{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Question{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
