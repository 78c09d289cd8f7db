package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/lshigami/quickpoll/config"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/lshigami/quickpoll/internal/repository"
	"github.com/lshigami/quickpoll/internal/service"
	"github.com/lshigami/quickpoll/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	svc := service.NewPollService(
		repository.NewQuestionRepository(db),
		repository.NewChoiceRepository(db),
		clockwork.NewFakeClockAt(testutil.Now),
		&config.Config{Polls: config.Polls{IndexLimit: 5}},
	)

	r := gin.New()
	NewPollController(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, db
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestListQuestions(t *testing.T) {
	r, db := setupRouter(t)

	w := do(r, http.MethodGet, "/api/v1/questions", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, "[]", w.Body.String())

	testutil.CreateQuestion(t, db, "Past question 1.", -30, false)
	testutil.CreateQuestion(t, db, "Past question 2.", -0.5, false)
	testutil.CreateQuestion(t, db, "Future question.", 30, false)

	w = do(r, http.MethodGet, "/api/v1/questions", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	got := decode[[]dto.QuestionSummary](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, "Past question 2.", got[0].QuestionText)
	assert.True(t, got[0].PublishedRecently)
	assert.Equal(t, "Past question 1.", got[1].QuestionText)
}

func TestGetQuestionAndResults(t *testing.T) {
	r, db := setupRouter(t)
	past := testutil.CreateQuestion(t, db, "Past question.", -5, false)
	future := testutil.CreateQuestion(t, db, "Future question.", 5, false)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"detail of past question", fmt.Sprintf("/api/v1/questions/%d", past.ID), http.StatusOK},
		{"results of past question", fmt.Sprintf("/api/v1/questions/%d/results", past.ID), http.StatusOK},
		{"detail of future question", fmt.Sprintf("/api/v1/questions/%d", future.ID), http.StatusNotFound},
		{"results of future question", fmt.Sprintf("/api/v1/questions/%d/results", future.ID), http.StatusNotFound},
		{"invalid id", "/api/v1/questions/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, tt.path, nil)
			testutil.AssertStatus(t, w, tt.status)
			if tt.status == http.StatusOK {
				testutil.AssertContains(t, w, "Past question.")
			}
		})
	}
}

func TestVote(t *testing.T) {
	r, db := setupRouter(t)
	q := testutil.CreateQuestion(t, db, "Past question.", -5, true)
	picked := testutil.AddChoice(t, db, q.ID, "Picked")
	sibling := testutil.AddChoice(t, db, q.ID, "Sibling")
	path := fmt.Sprintf("/api/v1/questions/%d/votes", q.ID)

	for name, body := range map[string]any{
		"no body":            nil,
		"missing choice_id":  map[string]any{},
		"nonexistent choice": dto.VoteRequest{ChoiceID: ptr(9999)},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(r, http.MethodPost, path, body)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
			resp := decode[dto.ErrorResponse](t, w)
			assert.Equal(t, "You didn't select a choice.", resp.Error)
		})
	}
	assert.EqualValues(t, 0, testutil.Votes(t, db, picked.ID))

	w := do(r, http.MethodPost, path, dto.VoteRequest{ChoiceID: &picked.ID})
	testutil.AssertStatus(t, w, http.StatusOK)
	results := decode[dto.QuestionResults](t, w)
	assert.EqualValues(t, 1, results.TotalVotes)
	require.Len(t, results.Choices, 2)
	assert.EqualValues(t, 1, results.Choices[0].Votes)
	assert.EqualValues(t, 0, results.Choices[1].Votes)
	assert.EqualValues(t, 0, testutil.Votes(t, db, sibling.ID))
}

func TestVote_UnpublishedQuestion(t *testing.T) {
	r, db := setupRouter(t)
	q := testutil.CreateQuestion(t, db, "Future question.", 5, true)
	c := testutil.AddChoice(t, db, q.ID, "Too early")

	w := do(r, http.MethodPost, fmt.Sprintf("/api/v1/questions/%d/votes", q.ID), dto.VoteRequest{ChoiceID: &c.ID})
	testutil.AssertStatus(t, w, http.StatusNotFound)
	assert.EqualValues(t, 0, testutil.Votes(t, db, c.ID))
}

func ptr(v uint) *uint { return &v }
