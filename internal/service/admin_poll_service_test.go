package service

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/lshigami/quickpoll/internal/model"
	"github.com/lshigami/quickpoll/internal/repository"
	"github.com/lshigami/quickpoll/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminService(t *testing.T) (AdminPollService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	clock := clockwork.NewFakeClockAt(testutil.Now)
	svc := NewAdminPollService(repository.NewQuestionRepository(db), repository.NewChoiceRepository(db), clock, db)
	return svc, db
}

func TestCreateQuestion(t *testing.T) {
	svc, db := newAdminService(t)

	future := testutil.Now.Add(48 * time.Hour)
	resp, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		QuestionText: "  What's new?  ",
		PubDate:      &future,
		Choices:      []dto.ChoiceCreateDTO{{ChoiceText: "Not much"}, {ChoiceText: "The sky"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "What's new?", resp.QuestionText)
	assert.False(t, resp.Published)
	assert.True(t, resp.PubDate.Equal(future))
	require.Len(t, resp.Choices, 2)
	assert.Equal(t, "Not much", resp.Choices[0].ChoiceText)
	assert.Zero(t, resp.Choices[0].Votes)

	var count int64
	require.NoError(t, db.Model(&model.Choice{}).Where("question_id = ?", resp.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCreateQuestion_DefaultsPubDateToNow(t *testing.T) {
	svc, _ := newAdminService(t)

	resp, err := svc.CreateQuestion(dto.QuestionCreateDTO{QuestionText: "Right now?"})
	require.NoError(t, err)
	assert.True(t, resp.Published)
	assert.True(t, resp.PubDate.Equal(testutil.Now))
	assert.Empty(t, resp.Choices)
}

func TestCreateQuestion_Invalid(t *testing.T) {
	svc, db := newAdminService(t)

	_, err := svc.CreateQuestion(dto.QuestionCreateDTO{QuestionText: "   "})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	_, err = svc.CreateQuestion(dto.QuestionCreateDTO{
		QuestionText: "Valid?",
		Choices:      []dto.ChoiceCreateDTO{{ChoiceText: "yes"}, {ChoiceText: " "}},
	})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddChoiceAndDelete(t *testing.T) {
	svc, db := newAdminService(t)
	q := testutil.CreateQuestion(t, db, "Question.", 3, true)

	choice, err := svc.AddChoice(q.ID, dto.ChoiceCreateDTO{ChoiceText: "New choice"})
	require.NoError(t, err)
	assert.Equal(t, "New choice", choice.ChoiceText)
	assert.NotZero(t, choice.ID)

	_, err = svc.AddChoice(9999, dto.ChoiceCreateDTO{ChoiceText: "Orphan"})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	list, err := svc.ListQuestions()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Published)
	assert.Len(t, list[0].Choices, 1)

	require.NoError(t, svc.DeleteQuestion(q.ID))
	assert.ErrorIs(t, svc.DeleteQuestion(q.ID), ErrQuestionNotFound)

	list, err = svc.ListQuestions()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddChoice_MapsStoredChoice(t *testing.T) {
	svc, db := newAdminService(t)
	q := testutil.CreateQuestion(t, db, "Question.", -1, true)

	choice, err := svc.AddChoice(q.ID, dto.ChoiceCreateDTO{ChoiceText: "  Padded  "})
	require.NoError(t, err)
	require.NotNil(t, choice)
	assert.Equal(t, "Padded", choice.ChoiceText)
	assert.Equal(t, uint(0), choice.Votes)
	assert.Equal(t, uint(0), testutil.Votes(t, db, choice.ID))

	_, err = svc.AddChoice(q.ID, dto.ChoiceCreateDTO{ChoiceText: "   "})
	assert.ErrorIs(t, err, ErrInvalidQuestion)
}
