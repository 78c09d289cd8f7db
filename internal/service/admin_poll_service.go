package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/jonboulle/clockwork"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/lshigami/quickpoll/internal/model"
	"github.com/lshigami/quickpoll/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AdminPollService manages questions and choices without publication gating.
type AdminPollService interface {
	ListQuestions() ([]dto.AdminQuestionResponse, error)
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.AdminQuestionResponse, error)
	AddChoice(questionID uint, req dto.ChoiceCreateDTO) (*dto.ChoiceResult, error)
	DeleteQuestion(id uint) error
}

type adminPollService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
	clock        clockwork.Clock
	db           *gorm.DB // For transactions
}

func NewAdminPollService(questionRepo repository.QuestionRepository, choiceRepo repository.ChoiceRepository, clock clockwork.Clock, db *gorm.DB) AdminPollService {
	return &adminPollService{questionRepo: questionRepo, choiceRepo: choiceRepo, clock: clock, db: db}
}

func (s *adminPollService) ListQuestions() ([]dto.AdminQuestionResponse, error) {
	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions from repository")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	resp := make([]dto.AdminQuestionResponse, 0, len(questions))
	for i := range questions {
		item, err := s.toResponse(&questions[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *item)
	}
	return resp, nil
}

func (s *adminPollService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.AdminQuestionResponse, error) {
	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		return nil, fmt.Errorf("%w: question_text must not be blank", ErrInvalidQuestion)
	}

	question := model.Question{QuestionText: text, PubDate: s.clock.Now()}
	if req.PubDate != nil {
		question.PubDate = *req.PubDate
	}

	for i, c := range req.Choices {
		choiceText := strings.TrimSpace(c.ChoiceText)
		if choiceText == "" {
			return nil, fmt.Errorf("%w: choice %d must not be blank", ErrInvalidQuestion, i+1)
		}
		question.Choices = append(question.Choices, model.Choice{ChoiceText: choiceText})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		choices := question.Choices
		question.Choices = nil
		if err := repository.NewQuestionRepository(tx).Create(&question); err != nil {
			return err
		}
		choiceRepo := repository.NewChoiceRepository(tx)
		for i := range choices {
			choices[i].QuestionID = question.ID
			if err := choiceRepo.Create(&choices[i]); err != nil {
				return fmt.Errorf("failed to create choice %q for question %d: %w", choices[i].ChoiceText, question.ID, err)
			}
		}
		question.Choices = choices
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("questionText", text).Msg("Failed to create question")
		return nil, fmt.Errorf("error creating question: %w", err)
	}

	log.Info().Uint("questionID", question.ID).Int("choices", len(question.Choices)).Time("pubDate", question.PubDate).Msg("Question created")
	return s.toResponse(&question)
}

func (s *adminPollService) AddChoice(questionID uint, req dto.ChoiceCreateDTO) (*dto.ChoiceResult, error) {
	text := strings.TrimSpace(req.ChoiceText)
	if text == "" {
		return nil, fmt.Errorf("%w: choice_text must not be blank", ErrInvalidQuestion)
	}

	if _, err := s.questionRepo.FindByID(questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error fetching question %d: %w", questionID, err)
	}

	choice := model.Choice{QuestionID: questionID, ChoiceText: text}
	if err := s.choiceRepo.Create(&choice); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create choice")
		return nil, fmt.Errorf("error creating choice: %w", err)
	}

	var resp dto.ChoiceResult
	if err := copier.Copy(&resp, &choice); err != nil {
		return nil, fmt.Errorf("error mapping choice %d to response: %w", choice.ID, err)
	}
	return &resp, nil
}

func (s *adminPollService) DeleteQuestion(id uint) error {
	err := s.questionRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to delete question")
		return fmt.Errorf("error deleting question %d: %w", id, err)
	}
	log.Info().Uint("questionID", id).Msg("Question deleted")
	return nil
}

func (s *adminPollService) toResponse(question *model.Question) (*dto.AdminQuestionResponse, error) {
	var resp dto.AdminQuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question %d: %w", question.ID, err)
	}
	if resp.Choices == nil {
		resp.Choices = []dto.ChoiceResult{}
	}
	resp.Published = question.IsPublished(s.clock.Now())
	return &resp, nil
}
