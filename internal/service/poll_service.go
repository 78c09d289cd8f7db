package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/jonboulle/clockwork"
	"github.com/lshigami/quickpoll/config"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/lshigami/quickpoll/internal/model"
	"github.com/lshigami/quickpoll/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PollService serves the public poll pages. Every lookup is gated on the
// question's publication date relative to the service clock.
type PollService interface {
	ListLatest() ([]dto.QuestionSummary, error)
	GetQuestion(id uint) (*dto.QuestionDetail, error)
	GetResults(id uint) (*dto.QuestionResults, error)
	// Vote records one vote for choiceID on the question. On
	// ErrChoiceNotSelected the returned detail lets callers re-render the
	// voting form.
	Vote(questionID uint, choiceID *uint) (*dto.QuestionDetail, error)
}

type pollService struct {
	questionRepo repository.QuestionRepository
	choiceRepo   repository.ChoiceRepository
	clock        clockwork.Clock
	indexLimit   int
}

func NewPollService(questionRepo repository.QuestionRepository, choiceRepo repository.ChoiceRepository, clock clockwork.Clock, cfg *config.Config) PollService {
	return &pollService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
		clock:        clock,
		indexLimit:   cfg.Polls.IndexLimit,
	}
}

func (s *pollService) ListLatest() ([]dto.QuestionSummary, error) {
	now := s.clock.Now()
	questions, err := s.questionRepo.FindLatestPublished(now, s.indexLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list latest questions from repository")
		return nil, fmt.Errorf("error fetching latest questions: %w", err)
	}

	summaries := make([]dto.QuestionSummary, 0, len(questions))
	for i := range questions {
		summaries = append(summaries, dto.QuestionSummary{
			ID:                questions[i].ID,
			QuestionText:      questions[i].QuestionText,
			PubDate:           questions[i].PubDate,
			PublishedRecently: questions[i].WasPublishedRecently(now),
		})
	}
	return summaries, nil
}

func (s *pollService) GetQuestion(id uint) (*dto.QuestionDetail, error) {
	now := s.clock.Now()
	question, err := s.findPublished(id, now)
	if err != nil {
		return nil, err
	}
	return toDetail(question, now)
}

func (s *pollService) GetResults(id uint) (*dto.QuestionResults, error) {
	question, err := s.findPublished(id, s.clock.Now())
	if err != nil {
		return nil, err
	}

	var resp dto.QuestionResults
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing results for question %d: %w", id, err)
	}
	if resp.Choices == nil {
		resp.Choices = []dto.ChoiceResult{}
	}
	for _, c := range resp.Choices {
		resp.TotalVotes += c.Votes
	}
	return &resp, nil
}

func (s *pollService) Vote(questionID uint, choiceID *uint) (*dto.QuestionDetail, error) {
	now := s.clock.Now()
	question, err := s.findPublished(questionID, now)
	if err != nil {
		return nil, err
	}
	detail, err := toDetail(question, now)
	if err != nil {
		return nil, err
	}

	if choiceID == nil {
		log.Warn().Uint("questionID", questionID).Msg("Vote submitted without a choice")
		return detail, ErrChoiceNotSelected
	}

	matched, err := s.choiceRepo.IncrementVotes(question.ID, *choiceID)
	if err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Uint("choiceID", *choiceID).Msg("Failed to record vote")
		return nil, fmt.Errorf("error recording vote for question %d: %w", questionID, err)
	}
	if !matched {
		log.Warn().Uint("questionID", questionID).Uint("choiceID", *choiceID).Msg("Vote for a choice outside the question")
		return detail, ErrChoiceNotSelected
	}

	log.Info().Uint("questionID", questionID).Uint("choiceID", *choiceID).Msg("Vote recorded")
	return detail, nil
}

func (s *pollService) findPublished(id uint, now time.Time) (*model.Question, error) {
	question, err := s.questionRepo.FindPublishedByID(id, now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to get question from repository")
		return nil, fmt.Errorf("error fetching question %d: %w", id, err)
	}
	return question, nil
}

func toDetail(question *model.Question, now time.Time) (*dto.QuestionDetail, error) {
	var resp dto.QuestionDetail
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing question %d: %w", question.ID, err)
	}
	if resp.Choices == nil {
		resp.Choices = []dto.ChoiceResponse{}
	}
	resp.PublishedRecently = question.WasPublishedRecently(now)
	return &resp, nil
}
