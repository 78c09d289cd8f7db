package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lshigami/quickpoll/config"
	"github.com/lshigami/quickpoll/internal/repository"
	"github.com/lshigami/quickpoll/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPollService(t *testing.T) (PollService, *gorm.DB, clockwork.FakeClock) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	clock := clockwork.NewFakeClockAt(testutil.Now)
	cfg := &config.Config{Polls: config.Polls{IndexLimit: 5}}
	svc := NewPollService(repository.NewQuestionRepository(db), repository.NewChoiceRepository(db), clock, cfg)
	return svc, db, clock
}

func ptr(v uint) *uint { return &v }

func TestListLatest(t *testing.T) {
	svc, db, _ := newPollService(t)

	testutil.CreateQuestion(t, db, "Old question.", -30, false)
	testutil.CreateQuestion(t, db, "Recent question.", -0.5, false)
	testutil.CreateQuestion(t, db, "Future question.", 30, false)
	testutil.CreateQuestion(t, db, "Choiceless question.", -1, true)

	got, err := svc.ListLatest()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Recent question.", got[0].QuestionText)
	assert.True(t, got[0].PublishedRecently)
	assert.Equal(t, "Old question.", got[1].QuestionText)
	assert.False(t, got[1].PublishedRecently)
}

func TestListLatest_VisibilityFollowsClock(t *testing.T) {
	svc, db, clock := newPollService(t)
	testutil.CreateQuestion(t, db, "Tomorrow's question.", 1, false)

	got, err := svc.ListLatest()
	require.NoError(t, err)
	assert.Empty(t, got)

	clock.Advance(25 * time.Hour)

	got, err = svc.ListLatest()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Tomorrow's question.", got[0].QuestionText)
}

func TestGetQuestion(t *testing.T) {
	svc, db, _ := newPollService(t)
	past := testutil.CreateQuestion(t, db, "Past question.", -5, false)
	future := testutil.CreateQuestion(t, db, "Future question.", 5, false)
	choiceless := testutil.CreateQuestion(t, db, "No choices yet.", -1, true)

	got, err := svc.GetQuestion(past.ID)
	require.NoError(t, err)
	assert.Equal(t, "Past question.", got.QuestionText)
	require.Len(t, got.Choices, 1)
	assert.Equal(t, "A default choice.", got.Choices[0].ChoiceText)

	got, err = svc.GetQuestion(choiceless.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Choices)
	assert.Empty(t, got.Choices)

	_, err = svc.GetQuestion(future.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	_, err = svc.GetQuestion(12345)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestGetResults(t *testing.T) {
	svc, db, _ := newPollService(t)
	q := testutil.CreateQuestion(t, db, "Past question.", -5, true)
	a := testutil.AddChoice(t, db, q.ID, "A")
	b := testutil.AddChoice(t, db, q.ID, "B")
	require.NoError(t, db.Model(a).UpdateColumn("votes", 3).Error)
	require.NoError(t, db.Model(b).UpdateColumn("votes", 2).Error)
	future := testutil.CreateQuestion(t, db, "Future question.", 5, false)

	got, err := svc.GetResults(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Past question.", got.QuestionText)
	assert.EqualValues(t, 5, got.TotalVotes)
	require.Len(t, got.Choices, 2)
	assert.EqualValues(t, 3, got.Choices[0].Votes)
	assert.EqualValues(t, 2, got.Choices[1].Votes)

	_, err = svc.GetResults(future.ID)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestVote(t *testing.T) {
	svc, db, _ := newPollService(t)
	q := testutil.CreateQuestion(t, db, "Past question.", -5, true)
	picked := testutil.AddChoice(t, db, q.ID, "Picked")
	sibling := testutil.AddChoice(t, db, q.ID, "Sibling")
	other := testutil.CreateQuestion(t, db, "Other question.", -5, true)
	foreign := testutil.AddChoice(t, db, other.ID, "Foreign")
	future := testutil.CreateQuestion(t, db, "Future question.", 5, true)
	futureChoice := testutil.AddChoice(t, db, future.ID, "Too early")

	tests := []struct {
		name       string
		questionID uint
		choiceID   *uint
		wantErr    error
		wantDetail bool
	}{
		{"no choice submitted", q.ID, nil, ErrChoiceNotSelected, true},
		{"nonexistent choice", q.ID, ptr(9999), ErrChoiceNotSelected, true},
		{"choice of another question", q.ID, ptr(foreign.ID), ErrChoiceNotSelected, true},
		{"unpublished question", future.ID, ptr(futureChoice.ID), ErrQuestionNotFound, false},
		{"missing question", 9999, ptr(picked.ID), ErrQuestionNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := svc.Vote(tt.questionID, tt.choiceID)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantDetail {
				require.NotNil(t, detail)
				assert.Equal(t, q.QuestionText, detail.QuestionText)
			} else {
				assert.Nil(t, detail)
			}
		})
	}

	for _, id := range []uint{picked.ID, sibling.ID, foreign.ID, futureChoice.ID} {
		assert.EqualValues(t, 0, testutil.Votes(t, db, id), "choice %d", id)
	}

	_, err := svc.Vote(q.ID, ptr(picked.ID))
	require.NoError(t, err)
	assert.EqualValues(t, 1, testutil.Votes(t, db, picked.ID))
	assert.EqualValues(t, 0, testutil.Votes(t, db, sibling.ID))
}

func TestVote_ConcurrentVotesAreNotLost(t *testing.T) {
	svc, db, _ := newPollService(t)
	q := testutil.CreateQuestion(t, db, "Contested question.", -1, true)
	a := testutil.AddChoice(t, db, q.ID, "A")
	b := testutil.AddChoice(t, db, q.ID, "B")

	const voters = 30
	var successes atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			choice := a.ID
			if i%3 == 0 {
				choice = b.ID
			}
			if _, err := svc.Vote(q.ID, &choice); err == nil {
				successes.Add(1)
			}
		}(i)
	}
	wg.Wait()

	require.EqualValues(t, voters, successes.Load())
	assert.EqualValues(t, 20, testutil.Votes(t, db, a.ID))
	assert.EqualValues(t, 10, testutil.Votes(t, db, b.ID))
}
