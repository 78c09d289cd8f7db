package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quickpoll/internal/dto"
	"github.com/lshigami/quickpoll/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminPollController struct {
	adminPollService service.AdminPollService
}

func NewAdminPollController(adminPollService service.AdminPollService) *AdminPollController {
	return &AdminPollController{adminPollService: adminPollService}
}

func (c *AdminPollController) RegisterRoutes(router gin.IRouter) {
	questions := router.Group("/questions")
	questions.GET("", c.ListQuestions)
	questions.POST("", c.CreateQuestion)
	questions.POST("/:question_id/choices", c.AddChoice)
	questions.DELETE("/:question_id", c.DeleteQuestion)
}

// ListQuestions godoc
// @Summary (Admin) List all questions
// @Description Every question including unpublished and choiceless ones, newest publication date first.
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.AdminQuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *AdminPollController) ListQuestions(ctx *gin.Context) {
	questions, err := c.adminPollService.ListQuestions()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to retrieve questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description Creates a question and its initial choices in one transaction. pub_date defaults to now and may lie in the future.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_data body dto.QuestionCreateDTO true "Question with optional choices"
// @Success 201 {object} dto.AdminQuestionResponse "Question created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminPollController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminPollService.CreateQuestion(req)
	if errors.Is(err, service.ErrInvalidQuestion) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question", Details: []string{err.Error()}})
		return
	}
	if err != nil {
		log.Error().Err(err).Interface("requestPayload", req).Msg("Admin CreateQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AddChoice godoc
// @Summary (Admin) Add a choice to a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param choice_data body dto.ChoiceCreateDTO true "Choice text"
// @Success 201 {object} dto.ChoiceResult
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id}/choices [post]
func (c *AdminPollController) AddChoice(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	var req dto.ChoiceCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	choice, err := c.adminPollService.AddChoice(questionID, req)
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
	case errors.Is(err, service.ErrInvalidQuestion):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid choice", Details: []string{err.Error()}})
	case err != nil:
		log.Error().Err(err).Uint64("questionID", uint64(questionID)).Msg("Admin AddChoice: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to add choice"})
	default:
		ctx.JSON(http.StatusCreated, choice)
	}
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question and its choices
// @Tags Admin - Questions
// @Param question_id path int true "Question ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid Question ID format"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/{question_id} [delete]
func (c *AdminPollController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseQuestionID(ctx)
	if !ok {
		return
	}

	err := c.adminPollService.DeleteQuestion(questionID)
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found"})
	case err != nil:
		log.Error().Err(err).Uint64("questionID", uint64(questionID)).Msg("Admin DeleteQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete question"})
	default:
		ctx.Status(http.StatusNoContent)
	}
}

func parseQuestionID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("question_id"), 10, 0)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid Question ID format"})
		return 0, false
	}
	return uint(id), true
}
