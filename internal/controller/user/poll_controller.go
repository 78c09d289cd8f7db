package user

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/lshigami/quickpoll/internal/service"
	"github.com/rs/zerolog/log"
)

type PollController struct {
	pollService service.PollService
}

func NewPollController(pollService service.PollService) *PollController {
	return &PollController{pollService: pollService}
}

func (c *PollController) RegisterRoutes(router gin.IRouter) {
	questions := router.Group("/questions")
	questions.GET("", c.ListQuestions)
	questions.GET("/:question_id", c.GetQuestion)
	questions.GET("/:question_id/results", c.GetResults)
	questions.POST("/:question_id/votes", c.Vote)
}

// ListQuestions godoc
// @Summary (User) List the latest published questions
// @Description The most recently published questions that have at least one choice, newest first.
// @Tags User - Polls
// @Produce json
// @Success 200 {array} dto.QuestionSummary
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *PollController) ListQuestions(ctx *gin.Context) {
	questions, err := c.pollService.ListLatest()
	if err != nil {
		log.Error().Err(err).Msg("User ListQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (User) Get a published question with its choices
// @Tags User - Polls
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionDetail
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id} [get]
func (c *PollController) GetQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}
	question, err := c.pollService.GetQuestion(questionID)
	if err != nil {
		writeServiceError(ctx, "GetQuestion", questionID, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// GetResults godoc
// @Summary (User) Get the vote counts of a published question
// @Tags User - Polls
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResults
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id}/results [get]
func (c *PollController) GetResults(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}
	results, err := c.pollService.GetResults(questionID)
	if err != nil {
		writeServiceError(ctx, "GetResults", questionID, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// Vote godoc
// @Summary (User) Vote for a choice
// @Description Adds one vote to the choice and returns the updated results.
// @Tags User - Polls
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param vote body dto.VoteRequest true "Selected choice"
// @Success 200 {object} dto.QuestionResults
// @Failure 400 {object} dto.ErrorResponse "No valid choice selected"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/{question_id}/votes [post]
func (c *PollController) Vote(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn().Err(err).Msg("User Vote: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if _, err := c.pollService.Vote(questionID, req.ChoiceID); err != nil {
		writeServiceError(ctx, "Vote", questionID, err)
		return
	}

	results, err := c.pollService.GetResults(questionID)
	if err != nil {
		writeServiceError(ctx, "Vote", questionID, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func parseQuestionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("question_id"), 10, 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Question ID format"})
		return 0, false
	}
	return uint(id), true
}

func writeServiceError(ctx *gin.Context, op string, questionID uint, err error) {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		log.Warn().Uint("questionID", questionID).Msgf("User %s: Question not found or unpublished", op)
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
	case errors.Is(err, service.ErrChoiceNotSelected):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: service.ChoiceNotSelectedMessage})
	default:
		log.Error().Err(err).Uint("questionID", questionID).Msgf("User %s: Service error", op)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
